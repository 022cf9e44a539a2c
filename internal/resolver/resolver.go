package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"football-client/internal/domain"
	"football-client/internal/logging"
	"football-client/internal/metrics"
	"football-client/internal/serializer"
	"football-client/internal/store"
)

// FetchFunc retrieves the full collection of one entity kind from upstream.
type FetchFunc[T any] func(ctx context.Context) (domain.Collection[T], error)

// Lookup addresses a record by id or by name. When both are set the scan
// returns the first record matching either, testing the id first.
type Lookup struct {
	ID   string
	Name string
}

// Empty reports whether neither id nor name is set.
func (l Lookup) Empty() bool {
	return l.ID == "" && l.Name == ""
}

func (l Lookup) matches(r domain.Record) bool {
	if l.ID != "" && r.RecordID() == l.ID {
		return true
	}
	return l.Name != "" && r.RecordName() == l.Name
}

// Config wires one Resolver.
type Config[T domain.Record] struct {
	Entity string
	Fetch  FetchFunc[T]
	// Cache is the JSON caching serializer, read as the disk tier and written after every fetch.
	Cache serializer.Cache[T]
	// Output is the user-selected serializer, written after the cache. Optional.
	Output   serializer.Serializer[T]
	Logger   *slog.Logger
	Recorder *metrics.Recorder
}

// Resolver resolves one entity collection through memory, disk and remote tiers.
// Once a non-empty collection is held in memory it is trusted for the rest of
// the Resolver's life. A Resolver is not safe for concurrent use.
type Resolver[T domain.Record] struct {
	entity   string
	fetch    FetchFunc[T]
	cache    serializer.Cache[T]
	output   serializer.Serializer[T]
	memory   *store.MemoryStore[T]
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// New constructs a Resolver in StateUnresolved.
func New[T domain.Record](cfg Config[T]) *Resolver[T] {
	return &Resolver[T]{
		entity:   cfg.Entity,
		fetch:    cfg.Fetch,
		cache:    cfg.Cache,
		output:   cfg.Output,
		memory:   store.NewMemoryStore[T](),
		logger:   cfg.Logger,
		recorder: cfg.Recorder,
		now:      time.Now,
	}
}

// Entity returns the entity kind this Resolver serves.
func (r *Resolver[T]) Entity() string {
	return r.entity
}

// State reports whether the collection is already held in memory.
func (r *Resolver[T]) State() State {
	if r.memory.Loaded() {
		return StateMemoryCached
	}
	return StateUnresolved
}

// Get resolves the collection and returns the first record matching the lookup.
// A miss, including an empty lookup, is (zero, false, nil).
func (r *Resolver[T]) Get(ctx context.Context, lookup Lookup) (T, bool, error) {
	var zero T
	c, err := r.resolve(ctx)
	if err != nil {
		return zero, false, err
	}
	if lookup.Empty() {
		return zero, false, nil
	}
	for _, rec := range c.Response {
		if lookup.matches(rec) {
			return rec, true, nil
		}
	}
	return zero, false, nil
}

// All resolves the collection and returns a copy of every record.
func (r *Resolver[T]) All(ctx context.Context) ([]T, error) {
	c, err := r.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return c.Records(), nil
}

func (r *Resolver[T]) resolve(ctx context.Context) (domain.Collection[T], error) {
	if c, ok := r.memory.Collection(); ok {
		r.hit(TierMemory, c)
		return c, nil
	}

	if r.cache != nil {
		c, err := r.cache.Read()
		if err != nil {
			logging.Error(r.logger, "cache read failed", err,
				slog.String(logging.FieldEntity, r.entity),
				slog.String(logging.FieldPath, r.cache.Path()),
			)
			return domain.Collection[T]{}, fmt.Errorf("resolve %s: %w", r.entity, err)
		}
		if !c.Empty() {
			r.memory.Set(c)
			r.hit(TierDisk, c)
			return c, nil
		}
	}

	return r.fetchAndStore(ctx)
}

func (r *Resolver[T]) fetchAndStore(ctx context.Context) (domain.Collection[T], error) {
	if r.fetch == nil {
		return domain.Collection[T]{}, fmt.Errorf("resolve %s: no fetcher configured", r.entity)
	}

	c, err := r.fetch(ctx)
	if err != nil {
		return domain.Collection[T]{}, fmt.Errorf("resolve %s: %w", r.entity, err)
	}

	for _, s := range r.writers() {
		start := r.now()
		if err := s.Write(c); err != nil {
			return domain.Collection[T]{}, fmt.Errorf("resolve %s: %w", r.entity, err)
		}
		logging.Debug(r.logger, "collection written",
			slog.String(logging.FieldEntity, r.entity),
			slog.String(logging.FieldFormat, s.Format().String()),
			slog.String(logging.FieldPath, s.Path()),
			slog.Int64(logging.FieldDurationMS, r.now().Sub(start).Milliseconds()),
		)
	}

	r.memory.Set(c)
	r.hit(TierRemote, c)
	return c, nil
}

// writers returns the output serializer followed by the caching serializer.
// A failed output write therefore leaves no cache file for the next run.
func (r *Resolver[T]) writers() []serializer.Serializer[T] {
	out := make([]serializer.Serializer[T], 0, 2)
	if r.output != nil {
		out = append(out, r.output)
	}
	if r.cache != nil {
		out = append(out, r.cache)
	}
	return out
}

func (r *Resolver[T]) hit(tier string, c domain.Collection[T]) {
	r.recorder.RecordResolution(r.entity, tier)
	logging.Debug(r.logger, "collection resolved",
		slog.String(logging.FieldEntity, r.entity),
		slog.String(logging.FieldTier, tier),
		slog.Int(logging.FieldCount, len(c.Response)),
	)
}
