package app

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the scaffoldctl command tree (spec §6, CLI wiring
// described in SPEC_FULL.md §6.2): it loads a FASTA of contigs plus a
// scaffold-edge TSV and an optional containment file, runs contraction to a
// fixpoint, and writes whichever output formats the caller requested.
func NewRootCmd() *cobra.Command {
	cfg := &config{}

	cmd := &cobra.Command{
		Use:   "scaffoldctl",
		Short: "simplify a scaffold graph by edge contraction",
		Long: `scaffoldctl ingests a set of contigs and noisy, supported scaffold
links, represents them as a bidirected string graph, and repeatedly
contracts degree-one edges to produce longer scaffolded sequences.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := hclog.New(&hclog.LoggerOptions{
				Name:  "scaffoldctl",
				Level: hclog.Info,
			})

			return run(afero.NewOsFs(), cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.fastaPath, "fasta", "", "input FASTA of contig sequences (required)")
	flags.StringVar(&cfg.tsvPath, "tsv", "", "input scaffold/overlap edge TSV (required)")
	flags.StringVar(&cfg.containmentPath, "containment", "", "input containment record file (optional)")
	flags.IntVar(&cfg.minSupport, "min-support", 0, "drop edges with support below this threshold")
	flags.BoolVar(&cfg.storeOrdering, "store-ordering", false, "capture contig ordering during contraction")
	flags.StringVar(&cfg.outFasta, "out-fasta", "", "output FASTA of contracted vertex sequences")
	flags.StringVar(&cfg.outTSV, "out-tsv", "", "output edge TSV of the contracted graph")
	flags.StringVar(&cfg.outGFA, "out-gfa", "", "output generic GFA of the contracted graph")
	flags.StringVar(&cfg.outGFABandage, "out-gfa-bandage", "", "output Bandage-flavored GFA")
	flags.StringVar(&cfg.outOrdering, "out-ordering", "", "output contig-ordering report (requires --store-ordering)")

	_ = cmd.MarkFlagRequired("fasta")
	_ = cmd.MarkFlagRequired("tsv")

	return cmd
}
