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
	"sync"
)

// ErrNoDefaultLoader is returned by LoadConfig before SetDefault is called.
var ErrNoDefaultLoader = errors.New("configloader: no default loader installed")

var (
	global   *Loader
	globalMu sync.RWMutex
)

// SetDefault installs the process-wide loader used by LoadConfig.
func SetDefault(l *Loader) {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = l
}

func defaultLoader() *Loader {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}

// Default returns the process-wide loader.
// Panics if SetDefault has not been called.
func Default() *Loader {
	l := defaultLoader()
	if l == nil {
		panic("configloader: SetDefault must be called before Default")
	}
	return l
}

// LoadConfig loads name through the process-wide loader. It returns
// ErrNoDefaultLoader if SetDefault has not been called.
func LoadConfig(ctx context.Context, name string) (Configuration, error) {
	l := defaultLoader()
	if l == nil {
		return nil, ErrNoDefaultLoader
	}
	return l.Load(ctx, name)
}

// ClearCache clears the process-wide loader's cache. It is a no-op when
// no default loader is installed.
func ClearCache() {
	if l := defaultLoader(); l != nil {
		l.ClearCache()
	}
}
