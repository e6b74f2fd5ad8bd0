package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quick/internal/script"
)

func (a *app) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a variant scenario",
		Long: "Run the steps of a YAML scenario against a variant over {int64, string, uuid}\n" +
			"and print the state after every step. Ops: at, get, clear, state.",
		Args: cobra.ExactArgs(1),
		RunE: a.runScenario,
	}
}

func (a *app) runScenario(cmd *cobra.Command, args []string) error {
	doc, err := script.LoadFile(args[0])
	if err != nil {
		return userError(err)
	}

	runner := script.NewRunner(a.logger)
	results, runErr := runner.Run(doc)

	out := cmd.OutOrStdout()
	for _, res := range results {
		s := a.newStream(out)
		s.Write(res)
		fmt.Fprintln(out, s.String())
	}
	if runErr != nil {
		return userError(fmt.Errorf("scenario %q: %w", doc.Name, runErr))
	}
	return nil
}
