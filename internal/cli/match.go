package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LaBackDoor/fsm-extractor/internal/extract"
	"github.com/LaBackDoor/fsm-extractor/internal/pkg/errors"
	"github.com/LaBackDoor/fsm-extractor/internal/signature"
)

// newMatchCmd exposes the runtime matcher: given a source file, a
// function block, a target state and a set of var=value assignments,
// report whether that assignment satisfies the state's derived
// signature. Like signatures, this is new — it is the whole reason the
// engine computes signatures in the first place.
func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <source.xml> <function-block> <state> [var=value ...]",
		Short: "Test a variable assignment against a state's derived signature",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := extract.ParseFile(args[0])
			if err != nil {
				return err
			}

			fb, err := doc.ExtractFunctionBlock(args[1])
			if err != nil {
				return err
			}

			assignment, err := parseAssignment(args[3:])
			if err != nil {
				return err
			}

			table := signature.Build(fb)
			matched := table.Match(args[2], assignment)

			if jsonOutput {
				fmt.Printf("{\"state\":%q,\"matched\":%t}\n", args[2], matched)
				return nil
			}
			if matched {
				fmt.Printf("state %s: MATCH\n", args[2])
			} else {
				fmt.Printf("state %s: no match\n", args[2])
			}
			return nil
		},
	}
	return cmd
}

func parseAssignment(pairs []string) (signature.Assignment, error) {
	assignment := make(signature.Assignment, len(pairs))
	for _, p := range pairs {
		parts := strings.SplitN(p, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, errors.WrapExtractError(p, "parse-assignment", errors.ErrInvalidAssignment)
		}
		assignment[parts[0]] = parts[1]
	}
	return assignment, nil
}
