package app

import "github.com/hashicorp/go-hclog"

// hclogObserver adapts contract.Observer to the CLI's structured logger,
// keeping the core contract package free of any logging dependency (it
// defines the Observer interface itself; this implementation lives only at
// the CLI boundary).
type hclogObserver struct {
	log hclog.Logger
}

func (o hclogObserver) OnProgress(examined, contracted int) {
	o.log.Info("contraction progress", "edges_examined", examined, "contractions", contracted)
}
