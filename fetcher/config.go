// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package fetcher

import "time"

// Config is the single configuration surface the fetcher recognizes: how
// long to wait for a peer to answer a GetRequest before declaring that
// peer-scoped bucket timed out.
type Config struct {
	// GetFromPeerTimeoutSeconds is the TOML-facing field (see
	// cmd/fetchnode's config loader); components construct engines with
	// the parsed time.Duration below.
	GetFromPeerTimeoutSeconds uint64 `toml:",omitempty"`
}

// PeerTimeout returns the configured timeout as a time.Duration, the form
// every Engine is constructed with.
func (c Config) PeerTimeout() time.Duration {
	return time.Duration(c.GetFromPeerTimeoutSeconds) * time.Second
}

// DefaultConfig is the built-in default applied when no config file
// overrides it.
var DefaultConfig = Config{GetFromPeerTimeoutSeconds: 3}
