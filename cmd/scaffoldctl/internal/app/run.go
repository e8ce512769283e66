package app

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	multierr "github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/katalvlaran/scaffoldgraph/contract"
	"github.com/katalvlaran/scaffoldgraph/graph"
	"github.com/katalvlaran/scaffoldgraph/internal/fastaio"
	"github.com/katalvlaran/scaffoldgraph/internal/gfaio"
	"github.com/katalvlaran/scaffoldgraph/internal/orderio"
	"github.com/katalvlaran/scaffoldgraph/internal/tsvio"
)

// run executes one full load-contract-write pipeline. runID correlates every
// log line emitted for this invocation; it is not a graph identifier and is
// never stored on any vertex or edge.
func run(fs afero.Fs, cfg *config, logger hclog.Logger) error {
	runID := uuid.New().String()
	log := logger.With("run_id", runID)

	g := graph.NewGraph()

	log.Info("loading contigs", "path", cfg.fastaPath)
	names, err := fastaio.Load(fs, cfg.fastaPath, g)
	if err != nil {
		return fmt.Errorf("scaffoldctl: loading fasta: %w", err)
	}

	log.Info("loading scaffold edges", "path", cfg.tsvPath, "min_support", cfg.minSupport)
	if err := tsvio.LoadEdges(fs, cfg.tsvPath, g, names, cfg.minSupport); err != nil {
		if _, recoverable := err.(*multierr.Error); !recoverable {
			return fmt.Errorf("scaffoldctl: loading edges: %w", err)
		}
		log.Warn("edge load reported recoverable warnings", "error", err)
	}

	if cfg.containmentPath != "" {
		log.Info("loading containment records", "path", cfg.containmentPath)
		if err := tsvio.LoadContainment(fs, cfg.containmentPath, g, names); err != nil {
			if _, recoverable := err.(*multierr.Error); !recoverable {
				return fmt.Errorf("scaffoldctl: loading containment: %w", err)
			}
			log.Warn("containment load reported recoverable warnings", "error", err)
		}
	}

	log.Info("contracting", "vertices", g.VertexCount(), "edges", g.EdgeCount())
	n, err := contract.Contract(g, contract.Options{
		StoreOrdering: cfg.storeOrdering,
		Observer:      hclogObserver{log: log},
	})
	if err != nil {
		return fmt.Errorf("scaffoldctl: contracting: %w", err)
	}
	log.Info("contraction complete", "contractions", n, "vertices_remaining", g.VertexCount())

	if cfg.outFasta != "" {
		if err := fastaio.Write(fs, cfg.outFasta, g); err != nil {
			return fmt.Errorf("scaffoldctl: writing fasta: %w", err)
		}
	}
	if cfg.outTSV != "" {
		if err := tsvio.WriteEdges(fs, cfg.outTSV, g); err != nil {
			return fmt.Errorf("scaffoldctl: writing tsv: %w", err)
		}
	}
	if cfg.outGFA != "" {
		if err := gfaio.WriteGeneric(fs, cfg.outGFA, g); err != nil {
			return fmt.Errorf("scaffoldctl: writing gfa: %w", err)
		}
	}
	if cfg.outGFABandage != "" {
		if err := gfaio.WriteBandage(fs, cfg.outGFABandage, g); err != nil {
			return fmt.Errorf("scaffoldctl: writing bandage gfa: %w", err)
		}
	}
	if cfg.outOrdering != "" {
		if err := orderio.Write(fs, cfg.outOrdering, g); err != nil {
			return fmt.Errorf("scaffoldctl: writing ordering report: %w", err)
		}
	}

	return nil
}
