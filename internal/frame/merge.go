package frame

import (
	"time"

	"github.com/google/uuid"

	"github.com/leengari/polyframe/internal/domain/data"
	"github.com/leengari/polyframe/internal/domain/errors"
)

// MergeOption configures a single merge invocation
type MergeOption func(*mergeConfig)

type mergeConfig struct {
	strategy  MergeStrategy
	observers []Observer
}

// WithStrategy overrides the frame's stored strategy for this call only.
// The frame itself is never mutated.
func WithStrategy(strategy MergeStrategy) MergeOption {
	return func(cfg *mergeConfig) {
		cfg.strategy = strategy
	}
}

// WithObserver subscribes an observer to this merge's lifecycle events
func WithObserver(obs Observer) MergeOption {
	return func(cfg *mergeConfig) {
		cfg.observers = append(cfg.observers, obs)
	}
}

// Merge invokes the active strategy against the frame's tables and returns
// the single combined table. The active strategy is the WithStrategy override
// if given, else the one stored at construction. Tables are passed in
// construction order and the engine adds no nondeterminism of its own: the
// result is a pure function of the frame's contents and the active strategy.
//
// The returned table is always a fresh value; if a strategy hands back one of
// the inputs unmodified, the engine clones it before returning.
func (f *PolyFrame) Merge(opts ...MergeOption) (*data.Table, error) {
	cfg := &mergeConfig{strategy: f.strategy}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.strategy == nil {
		return nil, &errors.InvalidStrategyError{Reason: "strategy function is nil"}
	}

	tables := f.Tables()

	// Unreachable through New, but guards a direct zero-value PolyFrame
	if len(tables) == 0 {
		return nil, &errors.EmptyInputError{Operation: "merge"}
	}

	mergeID := uuid.New().String()
	start := time.Now()
	emit(cfg.observers, Event{
		Type:      EventMergeStart,
		MergeID:   mergeID,
		Timestamp: start,
		Data:      len(tables),
	})

	result, err := invoke(cfg.strategy, tables)
	if err != nil {
		emit(cfg.observers, Event{
			Type:      EventMergeFailed,
			MergeID:   mergeID,
			Timestamp: time.Now(),
			Data:      err.Error(),
		})
		return nil, &errors.StrategyInvocationError{Cause: err}
	}

	if result == nil {
		err := &errors.StrategyContractError{Reason: "strategy returned no table"}
		emit(cfg.observers, Event{
			Type:      EventMergeFailed,
			MergeID:   mergeID,
			Timestamp: time.Now(),
			Data:      err.Error(),
		})
		return nil, err
	}

	// Freshness guarantee: never hand an input table back to the caller
	for _, t := range tables {
		if result == t {
			result = result.Clone()
			break
		}
	}

	emit(cfg.observers, Event{
		Type:      EventMergeEnd,
		MergeID:   mergeID,
		Timestamp: time.Now(),
		Data:      time.Since(start).String(),
	})

	return result, nil
}

// invoke runs the strategy with a panic guard so a panicking strategy is
// surfaced as an error instead of tearing down the caller
func invoke(strategy MergeStrategy, tables []*data.Table) (result *data.Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = errors.NewStrategyPanic(r)
		}
	}()
	return strategy(tables)
}

func emit(observers []Observer, event Event) {
	for _, obs := range observers {
		obs.OnEvent(event)
	}
}
