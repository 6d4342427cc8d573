package cli

import (
	"io"

	"github.com/go-i2p/go-confighandler/lib/handler"
	"github.com/pelletier/go-toml/v2"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDumpCommand(app *App) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the merged configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dump(cmd.OutOrStdout(), app.cfg, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "ini", "output format: ini, yaml or toml")
	return cmd
}

// dump writes cfg to w in the given format.
func dump(w io.Writer, cfg handler.Config, format string) error {
	switch format {
	case "ini":
		wt, ok := cfg.(io.WriterTo)
		if !ok {
			return oops.Errorf("handler %T cannot write ini output", cfg)
		}
		_, err := wt.WriteTo(w)
		return err
	case "yaml":
		dict, err := sectionsDict(cfg)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(dict); err != nil {
			return oops.Wrapf(err, "encode yaml")
		}
		return enc.Close()
	case "toml":
		dict, err := sectionsDict(cfg)
		if err != nil {
			return err
		}
		if err := toml.NewEncoder(w).Encode(dict); err != nil {
			return oops.Wrapf(err, "encode toml")
		}
		return nil
	default:
		return oops.Errorf("unknown format %q (want ini, yaml or toml)", format)
	}
}

// sectionsDict collects every section through the handler interface.
func sectionsDict(cfg handler.Config) (map[string]map[string]string, error) {
	dict := make(map[string]map[string]string)
	for _, section := range cfg.Sections() {
		values, err := cfg.SectionDict(section)
		if err != nil {
			return nil, err
		}
		dict[section] = values
	}
	return dict, nil
}
