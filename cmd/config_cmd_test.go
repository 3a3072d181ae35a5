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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cardinalhq/lightsout/internal/configloader"
)

const sampleConfig = `version: "1.0"
environment: test
discovery:
  method: tags
`

func writeParamFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "param.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func runConfigCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newConfigCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestConfigShow_YAML(t *testing.T) {
	path := writeParamFile(t, sampleConfig)

	out, logs, err := runConfigCmd(t, "show", "/app/config", "--from-file", path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "1.0", got["version"])
	assert.Equal(t, map[string]any{"method": "tags"}, got["discovery"])

	assert.Contains(t, logs, "loading configuration from store")
	assert.Contains(t, logs, "configuration loaded successfully")
}

func TestConfigShow_JSON(t *testing.T) {
	path := writeParamFile(t, sampleConfig)

	out, _, err := runConfigCmd(t, "show", "/app/config", "--from-file", path, "-o", "json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "test", got["environment"])
}

func TestConfigShow_DefaultParameterName(t *testing.T) {
	path := writeParamFile(t, sampleConfig)
	t.Setenv("LIGHTSOUT_PARAMETER_NAME", "/from/env")

	_, logs, err := runConfigCmd(t, "show", "--from-file", path)
	require.NoError(t, err)
	assert.Contains(t, logs, "/from/env")
}

func TestConfigShow_InvalidOutput(t *testing.T) {
	path := writeParamFile(t, sampleConfig)

	_, _, err := runConfigCmd(t, "show", "/app/config", "--from-file", path, "-o", "xml")
	require.ErrorContains(t, err, "invalid output format")
}

func TestConfigCheck(t *testing.T) {
	path := writeParamFile(t, sampleConfig)

	out, _, err := runConfigCmd(t, "check", "/app/config", "--from-file", path)
	require.NoError(t, err)
	assert.Equal(t, "configuration /app/config is valid (version 1.0, environment test)\n", out)
}

func TestConfigCheck_ValidationFailure(t *testing.T) {
	path := writeParamFile(t, "environment: test\n")

	_, _, err := runConfigCmd(t, "check", "/app/config", "--from-file", path)
	require.Error(t, err)

	var ve *configloader.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "version", ve.Field)
}

func TestConfigCheck_ParseFailure(t *testing.T) {
	path := writeParamFile(t, "services: [ec2, rds\n")

	_, _, err := runConfigCmd(t, "check", "/app/config", "--from-file", path)
	assert.ErrorIs(t, err, configloader.ErrConfigParse)
}

func TestWriteConfiguration(t *testing.T) {
	c := configloader.Configuration{"version": "1.0", "environment": "test", "discovery": map[string]any{}}

	var buf bytes.Buffer
	require.NoError(t, writeConfiguration(&buf, c, "yaml"))
	assert.Equal(t, "discovery: {}\nenvironment: test\nversion: \"1.0\"\n", buf.String())
}
