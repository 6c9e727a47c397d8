package numeric

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GriffinCanCode/bayescore/internal/config"
	"github.com/GriffinCanCode/bayescore/internal/logging"
	"github.com/GriffinCanCode/bayescore/internal/monitoring"
	"github.com/GriffinCanCode/bayescore/internal/types"
	"github.com/GriffinCanCode/bayescore/numeric/gradient"
	"github.com/GriffinCanCode/bayescore/numeric/surface"
)

// Provider implements the numeric service
type Provider struct {
	estimator *gradient.Estimator
	metrics   *monitoring.Metrics
	log       *logging.Logger

	mu         sync.RWMutex
	objectives map[string]gradient.Func
	surfaces   map[string]*surface.Fit
}

// NewProvider creates a numeric provider. The gradient estimator's
// diagnostics sink counts non-converged components into the metrics.
func NewProvider(cfg *config.Config, log *logging.Logger, metrics *monitoring.Metrics) *Provider {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logging.Nop()
	}
	if metrics == nil {
		metrics = monitoring.NewMetrics(nil)
	}

	// tee the counting core beside the host core so non-convergence is
	// counted even when the host logger drops the warning itself
	sink := log.Named("gradient").WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, monitoring.CounterCore(metrics.GradientNonConverged))
	}))

	return &Provider{
		estimator:  gradient.New(cfg.Gradient.EstimatorConfig(), sink),
		metrics:    metrics,
		log:        log,
		objectives: make(map[string]gradient.Func),
		surfaces:   make(map[string]*surface.Fit),
	}
}

// RegisterObjective makes a scalar objective available to numeric.gradient.
func (p *Provider) RegisterObjective(name string, fn gradient.Func) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.objectives[name] = fn
	p.log.Debug("objective registered", zap.String("name", name))
}

// RegisterSurface makes a fitted surface available to numeric.surface.eval.
func (p *Provider) RegisterSurface(name string, fit *surface.Fit) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.surfaces[name] = fit
	p.log.Debug("surface registered", zap.String("name", name))
}

func (p *Provider) objective(name string) (gradient.Func, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	fn, ok := p.objectives[name]
	return fn, ok
}

func (p *Provider) surfaceFit(name string) (*surface.Fit, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	fit, ok := p.surfaces[name]
	return fit, ok
}

// Definition returns service metadata with all tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.gradientTools()...)
	tools = append(tools, p.integrateTools()...)
	tools = append(tools, p.surfaceTools()...)
	tools = append(tools, p.utilityTools()...)

	return types.Service{
		ID:          "numeric",
		Name:        "Numeric Service",
		Description: "Numerical primitives for inference (gradients, log-domain integration, surface evaluation)",
		Category:    types.CategoryNumeric,
		Capabilities: []string{
			"gradient",
			"integration",
			"interpolation",
		},
		Tools: tools,
	}
}

// Execute routes to the appropriate tool
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	timer := monitoring.NewTimer(p.metrics, toolID)

	var result *types.Result
	var err error
	switch toolID {
	case "numeric.gradient":
		result, err = p.Gradient(ctx, params, appCtx)
	case "numeric.logtrapz":
		result, err = p.LogTrapz(ctx, params, appCtx)
	case "numeric.surface.eval":
		result, err = p.SurfaceEval(ctx, params, appCtx)
	case "numeric.roundpow2":
		result, err = p.RoundPow2(ctx, params, appCtx)
	default:
		timer.Stop("unknown")
		return nil, fmt.Errorf("unknown tool: %s", toolID)
	}

	status := "success"
	if err != nil || (result != nil && !result.Success) {
		status = "error"
	}
	timer.Stop(status)
	return result, err
}
