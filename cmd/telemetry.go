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

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cardinalhq/oteltools/pkg/telemetry"
	"github.com/google/uuid"
	slogmulti "github.com/samber/slog-multi"
	"go.opentelemetry.io/contrib/bridges/otelslog"

	"github.com/cardinalhq/lightsout/config"
	"github.com/cardinalhq/lightsout/internal/logctx"
)

var myInstanceID = uuid.NewString()

// setupTelemetry installs the default slog logger and, when OTLP export is
// enabled through the environment, the OpenTelemetry SDK. The returned
// context is cancelled on SIGINT/SIGTERM; the returned func flushes and
// shuts down telemetry.
func setupTelemetry(servicename string, logCfg config.LogConfig, w io.Writer) (context.Context, func() error, error) {
	doneCtx, doneCancel := handleSignals(context.Background())

	level, err := logctx.ParseLevel(logCfg.Level)
	if err != nil {
		doneCancel()
		return nil, nil, err
	}
	if os.Getenv("DEBUG") != "" || os.Getenv("LIGHTSOUT_DEBUG") != "" {
		level = slog.LevelDebug
	}

	f := func() error {
		doneCancel()
		return nil
	}

	attrs := []any{
		slog.String("name", logCfg.Name),
		slog.String("service", servicename),
		slog.String("instanceID", myInstanceID),
	}

	if os.Getenv("OTEL_SERVICE_NAME") != "" && os.Getenv("ENABLE_OTLP_TELEMETRY") == "true" {
		slog.SetDefault(slog.New(slogmulti.Fanout(
			logctx.NewHandler(w, level),
			otelslog.NewHandler(servicename),
		)).With(attrs...))
		slog.Info("OpenTelemetry exporting enabled")

		otelShutdown, err := telemetry.SetupOTelSDK(doneCtx)
		if err != nil {
			doneCancel()
			return nil, nil, fmt.Errorf("failed to setup OpenTelemetry SDK: %w", err)
		}

		f = func() error {
			defer doneCancel()
			slog.Debug("Shutting down OpenTelemetry SDK")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return otelShutdown(ctx)
		}
	} else {
		slog.SetDefault(slog.New(logctx.NewHandler(w, level)).With(attrs...))
	}

	return logctx.WithLogger(doneCtx, slog.Default()), f, nil
}

// handleSignals returns a context cancelled on SIGINT or SIGTERM.
func handleSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
