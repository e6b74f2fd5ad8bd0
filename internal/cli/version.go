package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the quick release version.
const Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/quick"

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the quick version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "quick v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
	cmd.Annotations = map[string]string{annotationNoSetup: "true"}
	return cmd
}
