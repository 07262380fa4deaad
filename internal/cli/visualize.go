package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/LaBackDoor/fsm-extractor/internal/extract"
	"github.com/LaBackDoor/fsm-extractor/internal/render"
)

func newVisualizeCmd() *cobra.Command {
	var asDot, asMarkdown bool

	cmd := &cobra.Command{
		Use:   "visualize <source.xml>",
		Short: "Export the extracted machine as Graphviz DOT or Markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := extract.ParseFile(args[0])
			if err != nil {
				return err
			}
			machine := doc.BuildMachine()

			switch {
			case asDot:
				return render.DOT(os.Stdout, machine)
			case asMarkdown:
				md := render.NewMarkdown("FSM Extraction Report", machine)
				for _, fb := range machine.FunctionBlocks {
					md.FunctionBlock(fb)
				}
				_, err := md.WriteTo(os.Stdout)
				return err
			default:
				text := render.NewText(os.Stdout)
				text.Color = cfg.ColorOutput && !noColor
				text.Machine(machine)
				return nil
			}
		},
	}

	cmd.Flags().BoolVar(&asDot, "dot", false, "emit Graphviz DOT")
	cmd.Flags().BoolVar(&asMarkdown, "markdown", false, "emit a Markdown report")

	return cmd
}
