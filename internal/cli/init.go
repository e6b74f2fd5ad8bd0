package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quick/internal/config"
)

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long:  "Create the configuration directory and a default config.yaml. An existing file is kept.",
		Args:  cobra.NoArgs,
		RunE:  a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	created, err := config.WriteDefault(a.resolvedDir)
	if err != nil {
		return sysError(err)
	}

	path := filepath.Join(a.resolvedDir, config.FileName)
	if created {
		a.logger.Info("config written", "path", path)
		fmt.Fprintln(cmd.OutOrStdout(), "Configuration written to", path)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Configuration already exists at", path)
	return nil
}
