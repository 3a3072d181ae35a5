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
	"errors"
	"fmt"
)

var (
	// ErrConfig matches every error produced by the loader.
	ErrConfig = errors.New("configuration error")

	ErrParameterNotFound = errors.New("parameter not found")
	ErrConfigRetrieval   = errors.New("configuration retrieval failed")
	ErrConfigParse       = errors.New("configuration parse failed")
	ErrConfigValidation  = errors.New("configuration validation failed")
)

// ParameterNotFoundError reports that the store has no parameter by that name.
type ParameterNotFoundError struct {
	Name string
	Err  error
}

func (e *ParameterNotFoundError) Error() string {
	return fmt.Sprintf("could not find SSM parameter: %s", e.Name)
}

func (e *ParameterNotFoundError) Unwrap() error { return e.Err }

func (e *ParameterNotFoundError) Is(target error) bool {
	return target == ErrConfig || target == ErrParameterNotFound
}

// RetrievalError reports any store failure other than a missing parameter.
type RetrievalError struct {
	Name string
	Err  error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("failed to retrieve SSM parameter %s: %v", e.Name, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

func (e *RetrievalError) Is(target error) bool {
	return target == ErrConfig || target == ErrConfigRetrieval
}

// ParseError reports that the parameter value is not a valid YAML mapping.
type ParseError struct {
	Name string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse YAML configuration from parameter %s: %v", e.Name, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool {
	return target == ErrConfig || target == ErrConfigParse
}

// ValidationError reports the first required field missing from the parsed
// configuration.
type ValidationError struct {
	Name  string
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("configuration in parameter %s is missing required field: %s", e.Name, e.Field)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrConfig || target == ErrConfigValidation
}

// errorKind names the error for metric attributes.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrParameterNotFound):
		return "not_found"
	case errors.Is(err, ErrConfigRetrieval):
		return "retrieval"
	case errors.Is(err, ErrConfigParse):
		return "parse"
	case errors.Is(err, ErrConfigValidation):
		return "validation"
	default:
		return "unknown"
	}
}
