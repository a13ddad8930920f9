package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report whether the configured terminal host is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}

		host := newHost(cfg, cmd.OutOrStdout())
		reachable := true
		if a, ok := host.(interface{ Available(context.Context) bool }); ok {
			reachable = a.Available(cmd.Context())
		}

		if !reachable {
			return fmt.Errorf("host %s: not reachable", cfg.Host)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "host %s: ok\n", cfg.Host)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
