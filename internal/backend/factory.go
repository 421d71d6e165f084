package backend

import (
	"fmt"

	"skema/internal/config"
	"skema/internal/port"
)

// ProviderFactory is a function that creates an LLMBackend from a backend config.
type ProviderFactory func(cfg *config.BackendConfig) (port.LLMBackend, error)

// registry of backend provider factories, populated by init() in each provider package
// or explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a backend provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// New creates an LLMBackend from a backend config using the registered factory.
func New(cfg *config.BackendConfig) (port.LLMBackend, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown backend provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
