// Package cli wires the command-line surface over the extraction,
// analysis, and signature-matching pipeline, grounded on the teacher's
// cobra-based command tree (cmd/rnx + internal/rnx/cli), one NewXCmd
// constructor per subcommand area registered from init.
package cli

import (
	"github.com/spf13/cobra"

	fsmconfig "github.com/LaBackDoor/fsm-extractor/internal/pkg/config"
	"github.com/LaBackDoor/fsm-extractor/internal/pkg/logger"
)

var (
	// jsonOutput is a persistent flag mirroring the teacher's
	// common.JSONOutput: shared by every subcommand that can render
	// either a human table or a machine-readable document.
	jsonOutput bool
	noColor    bool
	configPath string
	cfg        *fsmconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "fsmsig",
	Short: "fsmsig - symbolic path-signature extraction for PLC function blocks",
	Long: `fsmsig reads PLCopen XML sources, recovers the case-statement state
machine each function block implements, and derives a symbolic path
signature per state: the disjunction of guard conditions that must have
held for control to reach it.

Quick Examples:
  fsmsig extract program.xml                 Extract and print every function block
  fsmsig analyze program.xml                 Extract plus reachability/cycle analysis
  fsmsig signatures program.xml               Print derived state signatures
  fsmsig visualize program.xml --dot          Export a Graphviz digraph
  fsmsig match program.xml Valve 20 sensor=low   Test a variable assignment against a state's signature`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = fsmconfig.Load(configPath)
		if err != nil {
			return err
		}
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
		logger.SetGlobalTag(cmd.Name())
		return nil
	},
}

// Execute runs the command tree and is the only entry point cmd/fsmsig
// calls.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized text output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a fsmsig.yml configuration file")

	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newVisualizeCmd())
	rootCmd.AddCommand(newSignaturesCmd())
	rootCmd.AddCommand(newMatchCmd())
}
