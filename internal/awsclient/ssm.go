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

package awsclient

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"go.opentelemetry.io/otel/trace"
)

type SSMClient struct {
	Client *ssm.Client
	Tracer trace.Tracer
}

// ----------------------------------------------------------------
// internal config struct for GetSSM
// ----------------------------------------------------------------
type ssmConfig struct {
	RoleARN   string
	Region    string
	applySSMs []func(*ssm.Options)
}

// SSMOption is a functional option for GetSSM.
type SSMOption func(*ssmConfig)

// WithSSMRole sets the IAM Role ARN to assume (empty = no assume).
func WithSSMRole(roleARN string) SSMOption {
	return func(c *ssmConfig) {
		c.RoleARN = roleARN
	}
}

// WithSSMRegion overrides the AWS region for this call.
func WithSSMRegion(region string) SSMOption {
	return func(c *ssmConfig) {
		if region != "" {
			c.Region = region
		}
	}
}

// WithSSMEndpoint forces a custom SSM endpoint (eg LocalStack).
func WithSSMEndpoint(url string) SSMOption {
	return func(c *ssmConfig) {
		if url == "" {
			return
		}
		c.applySSMs = append(c.applySSMs, func(o *ssm.Options) {
			o.BaseEndpoint = aws.String(url)
		})
	}
}

func (m *Manager) GetSSM(ctx context.Context, opts ...SSMOption) (*SSMClient, error) {
	sc := ssmConfig{
		Region: m.baseCfg.Region,
	}
	for _, o := range opts {
		o(&sc)
	}

	cfg := m.baseCfg.Copy()
	cfg.Region = sc.Region
	cfg.Credentials = m.credentials(roleKey{Region: sc.Region, RoleARN: sc.RoleARN})

	client := ssm.NewFromConfig(cfg, sc.applySSMs...)

	return &SSMClient{Client: client, Tracer: m.tracer}, nil
}
