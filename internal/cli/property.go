package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quick/pkg/property"
)

func (a *app) newPropertyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "property <type> <value>",
		Short: "Parse and render a typed property value",
		Long: "Parse a value of the given property type and render it.\n" +
			"Types: categorical, text, integer, boolean, timestamp (RFC 3339), list (comma separated).",
		Args: cobra.ExactArgs(2),
		RunE: a.runProperty,
	}
}

func (a *app) runProperty(cmd *cobra.Command, args []string) error {
	valueType := strings.ToLower(args[0])
	val, err := property.Parse(valueType, args[1])
	if err != nil {
		return userError(err)
	}
	a.logger.Debug("property parsed", "type", val.ValueType())

	out := cmd.OutOrStdout()
	s := a.newStream(out)
	s.Write(val)
	fmt.Fprintln(out, s.String())
	return nil
}
