package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "List the devices and flashable targets of a version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := sourceOptions(cmd)
			if err != nil {
				return err
			}
			devices, err := c.app.Targets(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), devices)
		},
	}
	addSourceFlags(cmd)
	return cmd
}

func (c *CLI) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <target-id>",
		Short: "Print the raw configuration of a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := sourceOptions(cmd)
			if err != nil {
				return err
			}
			cfg, err := c.app.DeviceConfig(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), cfg)
		},
	}
	addSourceFlags(cmd)
	return cmd
}

func (c *CLI) newOptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options <target-id>",
		Short: "Print the configurable build options of a target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := sourceOptions(cmd)
			if err != nil {
				return err
			}
			options, err := c.app.Options(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), options)
		},
	}
	addSourceFlags(cmd)
	return cmd
}
