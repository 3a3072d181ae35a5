// Copyright (C) 2026 CardinalHQ, Inc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package configloader

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jellydator/ttlcache/v3"
	"gopkg.in/yaml.v3"

	"github.com/cardinalhq/lightsout/internal/paramstore"
)

// DefaultCapacity is the number of distinct parameter names kept in the cache.
const DefaultCapacity = 128

// RequiredFields are checked in this order; the first missing one is reported.
var RequiredFields = []string{"version", "environment", "discovery"}

// Configuration is a parsed and validated parameter value.
type Configuration map[string]any

// ParameterStore fetches raw parameter values. Implementations report a
// missing parameter by returning an error that wraps
// paramstore.ErrParameterNotFound.
type ParameterStore interface {
	GetParameter(ctx context.Context, name string) (string, error)
}

// Loader fetches, parses, validates and caches configurations.
type Loader struct {
	store    ParameterStore
	logger   *slog.Logger
	capacity uint64
	cache    *ttlcache.Cache[string, Configuration]
}

// Option is a functional option for New.
type Option func(*Loader)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithCapacity overrides DefaultCapacity. Zero is ignored.
func WithCapacity(capacity uint64) Option {
	return func(l *Loader) {
		if capacity > 0 {
			l.capacity = capacity
		}
	}
}

// New creates a Loader backed by store.
func New(store ParameterStore, opts ...Option) *Loader {
	l := &Loader{
		store:    store,
		logger:   slog.Default(),
		capacity: DefaultCapacity,
	}
	for _, opt := range opts {
		opt(l)
	}
	// No TTL, so the expiry goroutine (cache.Start) is never needed.
	l.cache = ttlcache.New(
		ttlcache.WithCapacity[string, Configuration](l.capacity),
	)
	return l
}

// Load returns the configuration stored under name, querying the store
// only when name is not cached.
func (l *Loader) Load(ctx context.Context, name string) (Configuration, error) {
	if item := l.cache.Get(name); item != nil {
		cacheHits.Add(ctx, 1)
		return item.Value(), nil
	}
	cacheMisses.Add(ctx, 1)

	l.logger.Info("loading configuration from store", slog.String("parameter_name", name))

	cfg, err := l.fetch(ctx, name)
	if err != nil {
		recordLoadFailure(ctx, err)
		return nil, err
	}

	l.cache.Set(name, cfg, ttlcache.DefaultTTL)
	l.logger.Info("configuration loaded successfully", slog.String("parameter_name", name))
	return cfg, nil
}

func (l *Loader) fetch(ctx context.Context, name string) (Configuration, error) {
	raw, err := l.store.GetParameter(ctx, name)
	if err != nil {
		if errors.Is(err, paramstore.ErrParameterNotFound) {
			return nil, &ParameterNotFoundError{Name: name, Err: err}
		}
		return nil, &RetrievalError{Name: name, Err: err}
	}

	cfg, err := parse(raw)
	if err != nil {
		return nil, &ParseError{Name: name, Err: err}
	}

	if field, ok := missingField(cfg); ok {
		return nil, &ValidationError{Name: name, Field: field}
	}
	return cfg, nil
}

// parse decodes raw as a YAML mapping. An empty document yields an empty
// Configuration, which then fails validation.
//
// The target is a plain map[string]any so nested mappings decode as
// map[string]any rather than Configuration.
func parse(raw string) (Configuration, error) {
	var m map[string]any
	if err := yaml.Unmarshal([]byte(raw), &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]any{}
	}
	return Configuration(m), nil
}

func missingField(cfg Configuration) (string, bool) {
	for _, field := range RequiredFields {
		if _, ok := cfg[field]; !ok {
			return field, true
		}
	}
	return "", false
}

// ClearCache drops every cached configuration.
func (l *Loader) ClearCache() {
	l.cache.DeleteAll()
}

// Len returns the number of cached configurations.
func (l *Loader) Len() int {
	return l.cache.Len()
}
