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
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cardinalhq/lightsout/config"
	"github.com/cardinalhq/lightsout/internal/awsclient"
	"github.com/cardinalhq/lightsout/internal/configloader"
	"github.com/cardinalhq/lightsout/internal/logctx"
	"github.com/cardinalhq/lightsout/internal/paramstore"
)

const configServiceName = "lightsout-config"

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the parameter store configuration",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigCheckCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var (
		fromFile string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "show [parameter-name]",
		Short: "Load a configuration and print it",
		Long:  `Load, parse and validate a configuration parameter, then print it as YAML or JSON. The parameter name defaults to parameter.name from the application config.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "yaml" && output != "json" {
				return fmt.Errorf("invalid output format: %s (must be yaml or json)", output)
			}
			return runWithConfig(cmd, args, fromFile, func(_ context.Context, _ string, c configloader.Configuration) error {
				return writeConfiguration(cmd.OutOrStdout(), c, output)
			})
		},
	}

	cmd.Flags().StringVar(&fromFile, "from-file", "", "Read the parameter value from a local YAML file instead of SSM")
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "Output format: yaml or json")

	return cmd
}

func newConfigCheckCmd() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "check [parameter-name]",
		Short: "Validate a configuration without printing it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithConfig(cmd, args, fromFile, func(_ context.Context, name string, c configloader.Configuration) error {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "configuration %s is valid (version %v, environment %v)\n",
					name, c["version"], c["environment"])
				return err
			})
		},
	}

	cmd.Flags().StringVar(&fromFile, "from-file", "", "Read the parameter value from a local YAML file instead of SSM")

	return cmd
}

// runWithConfig loads the application config, sets up telemetry, loads the
// named configuration and hands it to fn.
func runWithConfig(cmd *cobra.Command, args []string, fromFile string,
	fn func(ctx context.Context, name string, c configloader.Configuration) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load application config: %w", err)
	}

	name := cfg.Parameter.Name
	if len(args) > 0 {
		name = args[0]
	}

	ctx, doneFx, err := setupTelemetry(configServiceName, cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to setup telemetry: %w", err)
	}
	defer func() {
		if err := doneFx(); err != nil {
			slog.Error("Error shutting down telemetry", slog.Any("error", err))
		}
	}()

	store, err := newParameterStore(ctx, cfg, name, fromFile)
	if err != nil {
		return err
	}

	configloader.SetDefault(configloader.New(store,
		configloader.WithLogger(logctx.FromContext(ctx)),
		configloader.WithCapacity(cfg.Cache.Capacity),
	))

	c, err := configloader.LoadConfig(ctx, name)
	if err != nil {
		return err
	}
	return fn(ctx, name, c)
}

func newParameterStore(ctx context.Context, cfg *config.Config, name, fromFile string) (configloader.ParameterStore, error) {
	if fromFile != "" {
		return paramstore.NewFileStore(name, fromFile)
	}

	mgr, err := awsclient.NewManager(ctx, awsclient.WithDefaultRegion(cfg.AWS.Region))
	if err != nil {
		return nil, err
	}
	client, err := mgr.GetSSM(ctx,
		awsclient.WithSSMRegion(cfg.AWS.Region),
		awsclient.WithSSMRole(cfg.AWS.RoleARN),
		awsclient.WithSSMEndpoint(cfg.AWS.Endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSM client: %w", err)
	}
	return paramstore.NewSSMStore(client.Client,
		paramstore.WithTracer(client.Tracer),
		paramstore.WithDecryption(cfg.Parameter.WithDecryption),
	), nil
}

func writeConfiguration(w io.Writer, c configloader.Configuration, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	}
}
