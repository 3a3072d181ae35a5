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

// Package configloader loads operational configuration from a remote
// parameter store.
//
// # Pipeline
//
// A load fetches the raw parameter value, parses it as YAML, checks that
// the required top-level fields are present and caches the result keyed
// by parameter name. Failed loads are never cached, so the next call for
// the same name goes back to the store.
//
// # Caching
//
// The cache is a bounded LRU with no expiry. A cached Configuration is
// shared between callers and must be treated as read-only. Use
// ClearCache to force a refresh.
//
// # Errors
//
// Every error returned by Load matches ErrConfig with errors.Is. The
// concrete kinds (ParameterNotFoundError, RetrievalError, ParseError,
// ValidationError) can be matched with errors.As or their own sentinels.
package configloader
