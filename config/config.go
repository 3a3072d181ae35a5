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

package config

import (
	"errors"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// Config aggregates configuration for the application.
type Config struct {
	Parameter ParameterConfig `mapstructure:"parameter"`
	AWS       AWSConfig       `mapstructure:"aws"`
	Log       LogConfig       `mapstructure:"log"`
	Cache     CacheConfig     `mapstructure:"cache"`
}

// ParameterConfig names the parameter holding the operational configuration.
type ParameterConfig struct {
	Name           string `mapstructure:"name"`
	WithDecryption bool   `mapstructure:"with_decryption"`
}

type AWSConfig struct {
	Region   string `mapstructure:"region"`
	RoleARN  string `mapstructure:"role_arn"`
	Endpoint string `mapstructure:"endpoint"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Name  string `mapstructure:"name"`
}

type CacheConfig struct {
	Capacity uint64 `mapstructure:"capacity"`
}

const (
	DefaultParameterName = "/lights-out/config"
	DefaultLoggerName    = "lights-out"
	DefaultCacheCapacity = 128
)

var defaults = map[string]any{
	"parameter.name":            DefaultParameterName,
	"parameter.with_decryption": true,
	"log.level":                 "info",
	"log.name":                  DefaultLoggerName,
	"cache.capacity":            DefaultCacheCapacity,
}

// Load reads configuration from files and environment variables.
// Environment variables use the prefix "LIGHTSOUT" and the dot character
// in keys is replaced by an underscore. For example, "aws.role_arn" becomes
// "LIGHTSOUT_AWS_ROLE_ARN".
func Load() (*Config, error) {
	cfg := &Config{}

	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.SetEnvPrefix("LIGHTSOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	bindEnvs(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Parameter.Name) == "" {
		return errors.New("parameter.name must not be empty")
	}
	if c.Cache.Capacity == 0 {
		return errors.New("cache.capacity must be greater than zero")
	}
	return nil
}

// bindEnvs registers all keys within cfg so that viper will look up
// corresponding environment variables when unmarshalling.
func bindEnvs(v *viper.Viper, cfg any, parts ...string) {
	val := reflect.ValueOf(cfg)
	typ := reflect.TypeOf(cfg)
	if typ.Kind() == reflect.Ptr {
		val = val.Elem()
		typ = typ.Elem()
	}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag := f.Tag.Get("mapstructure")
		if tag == "" {
			tag = strings.ToLower(f.Name)
		}
		key := append(parts, tag)
		if f.Type.Kind() == reflect.Struct {
			bindEnvs(v, val.Field(i).Interface(), key...)
			continue
		}
		_ = v.BindEnv(strings.Join(key, "."))
	}
}
