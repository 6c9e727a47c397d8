// Package service provides the registry through which the inference code
// reaches its providers.
//
// The registry maintains a catalog of providers keyed by service ID and
// dispatches tool execution to them; tool IDs are namespaced as
// "<service>.<tool>".
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(numericProvider)
//	result, err := registry.Execute(ctx, "numeric.logtrapz", params, appCtx)
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/GriffinCanCode/bayescore/internal/types"
)

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// Registry manages provider registration and tool dispatch
type Registry struct {
	services sync.Map
}

// NewRegistry creates a new service registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a service provider
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}
	r.services.Store(def.ID, provider)
	return nil
}

// Unregister removes a service provider
func (r *Registry) Unregister(serviceID string) {
	r.services.Delete(serviceID)
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.services.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// List returns service definitions, optionally filtered by category
func (r *Registry) List(category *types.Category) []types.Service {
	var services []types.Service
	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
		return true
	})
	return services
}

// Execute runs a service tool
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	parts := strings.SplitN(toolID, ".", 2)
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid tool ID format: %s", toolID)
	}

	provider, ok := r.Get(parts[0])
	if !ok {
		return nil, fmt.Errorf("service not found: %s", parts[0])
	}
	return provider.Execute(ctx, toolID, params, appCtx)
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var total, totalTools int
	categories := make(map[string]int)

	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		total++
		totalTools += len(def.Tools)
		categories[string(def.Category)]++
		return true
	})

	return map[string]interface{}{
		"total_services": total,
		"total_tools":    totalTools,
		"categories":     categories,
	}
}
