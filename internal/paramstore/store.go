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

// Package paramstore provides read access to named configuration
// parameters held in a remote key-value store.
package paramstore

import "errors"

// ErrParameterNotFound is returned, possibly wrapped, when the store has
// no parameter with the requested name.
var ErrParameterNotFound = errors.New("parameter not found")
