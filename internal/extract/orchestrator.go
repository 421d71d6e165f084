package extract

import (
	"context"
	"errors"
	"fmt"
	"log"

	"skema/internal/domain"
	"skema/internal/schema"
)

// Orchestrator runs extraction strategies in priority order, falling through
// to the next on any failure. Each failure is recorded in a diagnostic trail;
// the first success wins and no further strategies run. A strategy is never
// retried: one failure is enough to move on, which bounds worst-case latency
// to one backend call per configured strategy.
type Orchestrator struct {
	strategies []Strategy
	byName     map[domain.Strategy]Strategy
}

// NewOrchestrator creates an Orchestrator from an ordered list of strategies;
// the given order is the default priority order.
func NewOrchestrator(strategies ...Strategy) *Orchestrator {
	byName := make(map[domain.Strategy]Strategy, len(strategies))
	for _, s := range strategies {
		byName[s.Name()] = s
	}
	return &Orchestrator{strategies: strategies, byName: byName}
}

// Extract tries each strategy in order until one succeeds. A nil or empty
// order selects the configured default. It returns the result, the trail of
// failed attempts (also populated on success, for diagnostics), and an error:
// *ExhaustedError when every strategy failed, or domain.ErrUnknownStrategy if
// the requested order names a strategy this orchestrator was not built with.
// Strategy-level failures never escape raw.
func (o *Orchestrator) Extract(ctx context.Context, sch *schema.Schema, ectx domain.ExtractionContext, order []domain.Strategy) (*domain.ExtractionResult, []domain.StrategyAttempt, error) {
	chain, err := o.resolve(order)
	if err != nil {
		return nil, nil, err
	}

	var attempts []domain.StrategyAttempt
	for _, strat := range chain {
		value, err := strat.Extract(ctx, sch, ectx)
		if err == nil {
			return &domain.ExtractionResult{Value: value, StrategyUsed: strat.Name()}, attempts, nil
		}

		log.Printf("extract.Orchestrator: strategy %s failed: %v", strat.Name(), err)
		attempts = append(attempts, domain.StrategyAttempt{
			Strategy: strat.Name(),
			Kind:     classify(err),
			Message:  err.Error(),
		})
	}

	return nil, attempts, &ExhaustedError{Attempts: attempts}
}

// resolve maps a requested order onto configured strategies, preserving the
// caller's ordering and omissions. Duplicate entries collapse to their first
// occurrence: no strategy runs twice for one request.
func (o *Orchestrator) resolve(order []domain.Strategy) ([]Strategy, error) {
	if len(order) == 0 {
		return o.strategies, nil
	}
	chain := make([]Strategy, 0, len(order))
	seen := make(map[domain.Strategy]bool, len(order))
	for _, name := range order {
		strat, ok := o.byName[name]
		if !ok {
			return nil, fmt.Errorf("orchestrator.resolve: %q: %w", name, domain.ErrUnknownStrategy)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		chain = append(chain, strat)
	}
	return chain, nil
}

func classify(err error) domain.ErrorKind {
	var (
		capErr    *CapabilityUnsupportedError
		parseErr  *UnparsableOutputError
		modeErr   *BackendModeFailure
		schemaErr *SchemaValidationError
		constErr  *ConstraintViolationError
	)
	switch {
	case errors.As(err, &capErr):
		return domain.ErrorKindCapabilityUnsupported
	case errors.As(err, &parseErr):
		return domain.ErrorKindUnparsableOutput
	case errors.As(err, &modeErr):
		return domain.ErrorKindBackendModeFailure
	case errors.As(err, &schemaErr):
		return domain.ErrorKindSchemaValidation
	case errors.As(err, &constErr):
		return domain.ErrorKindConstraintViolation
	default:
		return domain.ErrorKindBackendFailure
	}
}
