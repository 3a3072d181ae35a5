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
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SSMAPI is the subset of the SSM client used by SSMStore.
type SSMAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// SSMStore reads parameters from AWS Systems Manager Parameter Store.
type SSMStore struct {
	api            SSMAPI
	tracer         trace.Tracer
	withDecryption bool
}

// SSMOption is a functional option for NewSSMStore.
type SSMOption func(*SSMStore)

// WithTracer overrides the tracer used for GetParameter spans.
func WithTracer(tracer trace.Tracer) SSMOption {
	return func(s *SSMStore) {
		s.tracer = tracer
	}
}

// WithDecryption controls whether SecureString parameters are decrypted.
// Enabled by default.
func WithDecryption(enabled bool) SSMOption {
	return func(s *SSMStore) {
		s.withDecryption = enabled
	}
}

func NewSSMStore(api SSMAPI, opts ...SSMOption) *SSMStore {
	s := &SSMStore{
		api:            api,
		tracer:         otel.Tracer("github.com/cardinalhq/lightsout/internal/paramstore"),
		withDecryption: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetParameter returns the value of the named parameter. A missing
// parameter is reported as ErrParameterNotFound.
func (s *SSMStore) GetParameter(ctx context.Context, name string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "paramstore.ssm.GetParameter",
		trace.WithAttributes(attribute.String("parameter.name", name)))
	defer span.End()

	out, err := s.api.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(s.withDecryption),
	})
	if err != nil {
		span.RecordError(err)
		if IsNotFoundError(err) {
			span.SetStatus(codes.Error, "parameter not found")
			return "", fmt.Errorf("%w: %s: %w", ErrParameterNotFound, name, err)
		}
		span.SetStatus(codes.Error, err.Error())
		return "", fmt.Errorf("ssm GetParameter %s: %w", name, err)
	}

	if out == nil || out.Parameter == nil || out.Parameter.Value == nil {
		err := fmt.Errorf("ssm GetParameter %s: response has no value", name)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	span.SetAttributes(attribute.Int64("parameter.version", out.Parameter.Version))
	return aws.ToString(out.Parameter.Value), nil
}

// IsNotFoundError reports whether err is SSM's ParameterNotFound error.
func IsNotFoundError(err error) bool {
	var notFound *types.ParameterNotFound
	if errors.As(err, &notFound) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ParameterNotFound"
	}
	return false
}
