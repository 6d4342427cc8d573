package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSectionsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List section names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, section := range app.cfg.Sections() {
				fmt.Fprintln(cmd.OutOrStdout(), section)
			}
			return nil
		},
	}
}

func newKeysCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "keys SECTION",
		Short: "List the keys of a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := app.cfg.Keys(args[0])
			if err != nil {
				return err
			}
			for _, key := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}
}

func newGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get SECTION KEY",
		Short: "Print a value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := app.cfg.Get(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newSetCommand(app *App) *cobra.Command {
	var create bool
	cmd := &cobra.Command{
		Use:   "set SECTION KEY VALUE",
		Short: "Set a value and save the merged configuration to the last --config file",
		Long: `Set a value and save the merged configuration to the last --config file.

The whole configuration is written, not only the changed key. With more
than one --config file, values read from the earlier files are copied into
the last one.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Resolve the target first so nothing is changed when it is missing.
			if _, err := app.targetFile(); err != nil {
				return err
			}
			if create {
				if err := app.cfg.AddSection(args[0]); err != nil {
					return err
				}
			}
			if err := app.cfg.Set(args[0], args[1], args[2]); err != nil {
				return err
			}
			return app.save()
		},
	}
	cmd.Flags().BoolVar(&create, "create", false, "create the section if it does not exist")
	return cmd
}

func newMergeCommand(app *App) *cobra.Command {
	var noOverride, write bool
	cmd := &cobra.Command{
		Use:   "merge FILE",
		Short: "Merge sections from a YAML, TOML or JSON file",
		Long: `Merge sections from a YAML, TOML or JSON file.

Top-level tables of FILE become sections. Other top-level values are
ignored. Keys are lower-cased while reading FILE. With --write the
merged configuration from every --config file is saved to the last one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := viper.New()
			src.SetConfigFile(args[0])
			if err := src.ReadInConfig(); err != nil {
				return err
			}
			app.cfg.Merge(src.AllSettings(), !noOverride)
			if write {
				return app.save()
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noOverride, "no-override", false, "keep values that already exist")
	cmd.Flags().BoolVar(&write, "write", false, "save the result to the last --config file")
	return cmd
}
