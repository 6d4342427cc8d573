// Package handler defines the contract between a host application and its
// pluggable handlers, and the registry the host uses to look them up.
//
// # Registration
//
// Handlers are never registered as a side effect of importing their package.
// The host creates a Registry during startup and asks each handler package to
// register itself:
//
//	reg := handler.NewRegistry()
//	if err := config.Load(reg); err != nil {
//	    return err
//	}
//
// # Resolution
//
// Resolve builds a fresh handler from its factory. For configuration handlers
// ResolveConfig also checks the Config interface and runs Setup with the host:
//
//	cfg, err := handler.ResolveConfig(reg, "ini", app)
//
// # Thread Safety
//
// The Registry is safe for concurrent use. Handlers built from it are not,
// unless their own documentation says otherwise.
package handler
