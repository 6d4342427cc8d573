package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-i2p/go-confighandler/lib/config"
	"github.com/go-i2p/go-confighandler/lib/handler"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logger.GetGoI2PLogger()

const (
	appName   = "confighandler"
	envPrefix = "CONFIGHANDLER"
)

// App is the host application handed to the configuration handler.
type App struct {
	settings *viper.Viper
	cfg      handler.Config
	files    []string
}

// Label names the host application.
func (a *App) Label() string {
	return appName
}

// Config returns the resolved configuration handler.
func (a *App) Config() handler.Config {
	return a.cfg
}

// setup registers and resolves the configuration handler, then parses every
// configured file in order.
func (a *App) setup(cmd *cobra.Command) error {
	reg := handler.NewRegistry()
	if err := config.Load(reg); err != nil {
		return err
	}

	label := a.settings.GetString("handler")
	cfg, err := handler.ResolveConfig(reg, label, a)
	if err != nil {
		return oops.Wrapf(err, "available handlers: %s", strings.Join(reg.Labels(handler.ConfigInterface), ", "))
	}
	a.cfg = cfg

	a.files = a.settings.GetStringSlice("config")
	for _, path := range a.files {
		ok, err := cfg.ParseFile(path)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: skipping missing config file %s\n", appName, path)
		}
	}

	log.WithFields(logger.Fields{
		"at":       "App.setup",
		"handler":  label,
		"files":    a.files,
		"sections": len(cfg.Sections()),
	}).Debug("configuration loaded")
	return nil
}

// targetFile is the file that set and merge --write save to.
func (a *App) targetFile() (string, error) {
	if len(a.files) == 0 {
		return "", oops.Errorf("no --config file to write to")
	}
	return a.files[len(a.files)-1], nil
}

// save writes the configuration back to the last --config file.
func (a *App) save() error {
	path, err := a.targetFile()
	if err != nil {
		return err
	}
	saver, ok := a.cfg.(interface{ SaveFile(string) error })
	if !ok {
		return oops.Errorf("handler %T cannot save files", a.cfg)
	}
	return saver.SaveFile(path)
}

// NewRootCommand builds the confighandler command tree.
func NewRootCommand() *cobra.Command {
	app := &App{settings: viper.New()}

	root := &cobra.Command{
		Use:   appName,
		Short: "Inspect and edit sectioned key/value configuration files",
		Long: `Inspect and edit sectioned key/value configuration files.

Files given with --config are parsed in order; values from later files
override earlier ones and missing files are skipped.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringSliceP("config", "c", nil, "configuration file to parse (repeatable)")
	flags.String("handler", config.Label, "configuration handler label")

	app.settings.SetEnvPrefix(envPrefix)
	app.settings.AutomaticEnv()
	for _, name := range []string{"config", "handler"} {
		if err := app.settings.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		newSectionsCommand(app),
		newKeysCommand(app),
		newGetCommand(app),
		newSetCommand(app),
		newMergeCommand(app),
		newDumpCommand(app),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}

// Main runs the command line against the process arguments.
func Main() int {
	return Execute(os.Args[1:], os.Stdout, os.Stderr)
}
