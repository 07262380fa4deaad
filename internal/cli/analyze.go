package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/LaBackDoor/fsm-extractor/internal/analysis"
	"github.com/LaBackDoor/fsm-extractor/internal/extract"
	"github.com/LaBackDoor/fsm-extractor/internal/render"
)

func newAnalyzeCmd() *cobra.Command {
	var checkCycles, checkUnreachable, checkDeadStates, all bool

	cmd := &cobra.Command{
		Use:   "analyze <source.xml>",
		Short: "Extract function blocks and report reachability, dead ends, and cycles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := extract.ParseFile(args[0])
			if err != nil {
				return err
			}
			machine := doc.BuildMachine()

			// Selecting any single check without an explicit --all runs
			// only the selected checks.
			runAll := all
			if !cmd.Flags().Changed("all") && (checkCycles || checkUnreachable || checkDeadStates) {
				runAll = false
			}
			opts := analysis.Options{
				CheckCycles:      checkCycles || runAll,
				CheckUnreachable: checkUnreachable || runAll,
				CheckDeadStates:  checkDeadStates || runAll,
			}
			stats := analysis.AnalyzeMachineWithOptions(machine, opts)

			if jsonOutput {
				return render.JSONWithAnalysis(os.Stdout, machine, stats)
			}

			text := render.NewText(os.Stdout)
			text.Color = cfg.ColorOutput && !noColor
			for _, fb := range machine.FunctionBlocks {
				text.FunctionBlock(fb)
				if stat, ok := stats[fb.Name]; ok {
					text.AnalysisWithOptions(stat, opts)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkCycles, "cycles", false, "check for cycles")
	cmd.Flags().BoolVar(&checkUnreachable, "unreachable", false, "check for unreachable states")
	cmd.Flags().BoolVar(&checkDeadStates, "dead-states", false, "check for dead-end states")
	cmd.Flags().BoolVar(&all, "all", true, "run every check (default when no single check is selected)")

	return cmd
}
