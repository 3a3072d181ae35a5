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

package logctx

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	retrieved := FromContext(WithLogger(ctx, logger))
	assert.Same(t, logger, retrieved)
}

func TestFromContext_NoLogger(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}

func TestNew_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New("lights-out", slog.LevelInfo, &buf)

	logger.Info("configuration loaded successfully", slog.String("parameter_name", "/app/config"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "lights-out", entry["name"])
	assert.Equal(t, "configuration loaded successfully", entry["message"])
	assert.Equal(t, "/app/config", entry["parameter_name"])
	assert.NotContains(t, entry, "msg")
	assert.NotContains(t, entry, "time")

	ts, ok := entry["timestamp"].(string)
	require.True(t, ok)
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())
}

func TestNew_OneLinePerCall(t *testing.T) {
	var buf bytes.Buffer
	logger := New("test", slog.LevelInfo, &buf)

	logger.Info("one")
	logger.Warn("two")
	logger.Debug("filtered")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"level":"WARN"`)
}

func TestNew_GroupedAttrsKeepKeys(t *testing.T) {
	var buf bytes.Buffer
	logger := New("test", slog.LevelInfo, &buf)

	logger.Info("grouped", slog.Group("req", slog.String("msg", "inner")))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	req, ok := entry["req"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "inner", req["msg"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{" Error ", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
