package handler

import (
	"errors"
	"sort"
	"sync"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

var log = logger.GetGoI2PLogger()

// ErrNotRegistered is returned when no factory exists for an interface/label pair.
var ErrNotRegistered = errors.New("handler not registered")

// Registry maps handler interfaces and labels to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]map[string]Factory)}
}

// Register adds a factory under iface and label.
// Registering the same pair twice is an error.
func (r *Registry) Register(iface, label string, f Factory) error {
	if f == nil {
		return oops.Errorf("nil factory for %s handler %q", iface, label)
	}
	if iface == "" || label == "" {
		return oops.Errorf("handler interface and label must be set (got %q, %q)", iface, label)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	labels, ok := r.factories[iface]
	if !ok {
		labels = make(map[string]Factory)
		r.factories[iface] = labels
	}
	if _, exists := labels[label]; exists {
		return oops.Errorf("%s handler %q already registered", iface, label)
	}
	labels[label] = f

	log.WithFields(logger.Fields{
		"at":        "Registry.Register",
		"interface": iface,
		"label":     label,
	}).Debug("registered handler")
	return nil
}

// Registered reports whether a factory exists for iface and label.
func (r *Registry) Registered(iface, label string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[iface][label]
	return ok
}

// Labels returns the sorted labels registered under iface.
func (r *Registry) Labels(iface string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	labels := make([]string, 0, len(r.factories[iface]))
	for label := range r.factories[iface] {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Resolve builds a new handler from the factory registered under iface and label.
func (r *Registry) Resolve(iface, label string) (Handler, error) {
	r.mu.RLock()
	f, ok := r.factories[iface][label]
	r.mu.RUnlock()
	if !ok {
		return nil, oops.Wrapf(ErrNotRegistered, "%s handler %q", iface, label)
	}
	return f(), nil
}

// ResolveConfig resolves a configuration handler and runs its Setup with app.
func ResolveConfig(r *Registry, label string, app App) (Config, error) {
	h, err := r.Resolve(ConfigInterface, label)
	if err != nil {
		return nil, err
	}
	cfg, ok := h.(Config)
	if !ok {
		return nil, oops.Errorf("handler %q registered as %s does not implement it (%T)", label, ConfigInterface, h)
	}
	cfg.Setup(app)
	return cfg, nil
}
