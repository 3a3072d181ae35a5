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
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardinalhq/lightsout/internal/paramstore"
)

func TestDefaultLoader(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })

	assert.Panics(t, func() { Default() })
	assert.NotPanics(t, ClearCache)
	_, err := LoadConfig(context.Background(), "/app/config")
	require.ErrorIs(t, err, ErrNoDefaultLoader)

	var cfg Configuration
	store := paramstore.NewMapStore(map[string]string{"/app/config": validConfigYAML})
	SetDefault(New(store, WithLogger(slog.New(slog.DiscardHandler))))

	ctx := context.Background()
	cfg, err = LoadConfig(ctx, "/app/config")
	require.NoError(t, err)
	assert.Equal(t, "test", cfg["environment"])

	_, err = LoadConfig(ctx, "/app/config")
	require.NoError(t, err)
	assert.Equal(t, int64(1), store.Calls())

	ClearCache()
	_, err = LoadConfig(ctx, "/app/config")
	require.NoError(t, err)
	assert.Equal(t, int64(2), store.Calls())
}
