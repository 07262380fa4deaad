package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/LaBackDoor/fsm-extractor/internal/extract"
	"github.com/LaBackDoor/fsm-extractor/internal/render"
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <source.xml>",
		Short: "Extract function blocks from a PLCopen XML source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := extract.ParseFile(args[0])
			if err != nil {
				return err
			}
			machine := doc.BuildMachine()

			if jsonOutput {
				return render.JSON(os.Stdout, machine)
			}
			text := render.NewText(os.Stdout)
			text.Color = cfg.ColorOutput && !noColor
			text.Machine(machine)
			return nil
		},
	}
	return cmd
}
