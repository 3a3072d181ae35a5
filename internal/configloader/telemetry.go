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
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	cacheHits    metric.Int64Counter
	cacheMisses  metric.Int64Counter
	loadFailures metric.Int64Counter
)

func init() {
	meter := otel.Meter("github.com/cardinalhq/lightsout/internal/configloader")

	var err error

	cacheHits, err = meter.Int64Counter(
		"lightsout.config.cache.hits",
		metric.WithDescription("Number of configuration loads served from cache"),
	)
	if err != nil {
		log.Fatalf("failed to create config.cache.hits counter: %v", err)
	}

	cacheMisses, err = meter.Int64Counter(
		"lightsout.config.cache.misses",
		metric.WithDescription("Number of configuration loads that queried the parameter store"),
	)
	if err != nil {
		log.Fatalf("failed to create config.cache.misses counter: %v", err)
	}

	loadFailures, err = meter.Int64Counter(
		"lightsout.config.load.failures",
		metric.WithDescription("Number of failed configuration loads"),
	)
	if err != nil {
		log.Fatalf("failed to create config.load.failures counter: %v", err)
	}
}

func recordLoadFailure(ctx context.Context, err error) {
	loadFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("error_kind", errorKind(err)),
	))
}
