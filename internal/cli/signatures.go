package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/LaBackDoor/fsm-extractor/internal/extract"
	"github.com/LaBackDoor/fsm-extractor/internal/render"
	"github.com/LaBackDoor/fsm-extractor/internal/signature"
)

// newSignaturesCmd exposes the path-signature engine directly — the
// subcommand the original Rust tool never had, since this command's job
// (compute and print every state's symbolic signature) is exactly the
// capability the engine exists for.
func newSignaturesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signatures <source.xml>",
		Short: "Compute and print the symbolic path signature for every state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := extract.ParseFile(args[0])
			if err != nil {
				return err
			}
			machine := doc.BuildMachine()

			tables := make(map[string]*signature.Table, len(machine.FunctionBlocks))
			for _, fb := range machine.FunctionBlocks {
				tables[fb.Name] = signature.Build(fb)
			}

			if jsonOutput {
				return render.JSONFull(os.Stdout, machine, nil, tables)
			}

			text := render.NewText(os.Stdout)
			text.Color = cfg.ColorOutput && !noColor
			for _, fb := range machine.FunctionBlocks {
				text.FunctionBlock(fb)
				text.Signatures(tables[fb.Name])
			}
			return nil
		},
	}
	return cmd
}
