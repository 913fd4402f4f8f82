package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgPath
		if path == "" {
			path = config.DefaultPath()
		}
		if err := confirmOverwrite(cmd.InOrStdin(), cmd.ErrOrStderr(), path, configYes); err != nil {
			return err
		}
		if err := cfg.Save(path); err != nil {
			return err
		}
		NewReporter(cmd.ErrOrStderr(), false).PrintSuccess("Wrote %s", path)
		return nil
	},
}

var configYes bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configInitCmd)

	configInitCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "Overwrite an existing file without prompting")
}
