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

package paramstore

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
)

// MapStore is an in-memory Store. It is safe for concurrent use.
type MapStore struct {
	mu     sync.RWMutex
	values map[string]string
	err    error
	calls  atomic.Int64
}

func NewMapStore(values map[string]string) *MapStore {
	m := &MapStore{values: make(map[string]string, len(values))}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

// NewFileStore returns a MapStore holding the contents of path under name.
func NewFileStore(name, path string) (*MapStore, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parameter file: %w", err)
	}
	return NewMapStore(map[string]string{name: string(b)}), nil
}

// Put sets or replaces the value for name.
func (m *MapStore) Put(name, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[name] = value
}

// FailWith makes every subsequent GetParameter call return err.
// Passing nil restores normal behavior.
func (m *MapStore) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns the number of GetParameter calls made so far.
func (m *MapStore) Calls() int64 {
	return m.calls.Load()
}

func (m *MapStore) GetParameter(_ context.Context, name string) (string, error) {
	m.calls.Add(1)

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return "", m.err
	}
	v, ok := m.values[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrParameterNotFound, name)
	}
	return v, nil
}
