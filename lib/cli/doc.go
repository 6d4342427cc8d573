// Package cli implements the confighandler command, a small host application
// for the configuration handler.
//
// Every invocation builds a handler.Registry, registers the INI handler,
// resolves the handler named by --handler and parses each --config file in
// order. Missing files are skipped. Flags can also be set from the
// environment with the CONFIGHANDLER_ prefix, e.g. CONFIGHANDLER_HANDLER.
// Set DEBUG_I2P=debug to see the handler's debug log on stdout.
//
//	confighandler -c /etc/app.conf -c ~/.app.conf sections
//	confighandler -c ~/.app.conf get server host
//	confighandler -c ~/.app.conf set --create server port 8080
//	confighandler -c ~/.app.conf merge overrides.yaml --no-override --write
//	confighandler -c ~/.app.conf dump --format toml
package cli
