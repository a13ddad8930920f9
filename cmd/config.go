package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/roveo/dirnav/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n", path)
		return toml.NewEncoder(out).Encode(cfg)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
