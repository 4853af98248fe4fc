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

// Package fetcher is the generic, polymorphic request-routing state
// machine described by the node's item-fetching core: resolve "give me
// item X" requests from local storage, falling back to a named peer,
// coalescing concurrent requesters and enforcing a per-peer timeout.
//
// The three supported item kinds (Deploy, Block, BlockByHeight, see
// deploy.go/block.go/blockbyheight.go) each get their own Engine instance;
// tables are never shared across kinds.
package fetcher

import "github.com/abeychain/fetchnode/p2p"

// Item is the polymorphism boundary every fetchable value kind must
// satisfy: a cheap-to-derive, comparable identifier — cheap clone, total
// equality, stable hash, small fixed-size debug rendering, all satisfied
// for free by any comparable Go value used as a map key.
type Item[ID comparable] interface {
	FetchID() ID
}

// Provenance records whether a resolved item came from local storage or
// from a named peer.
type Provenance int

const (
	FromStorage Provenance = iota
	FromPeer
)

func (p Provenance) String() string {
	if p == FromPeer {
		return "peer"
	}
	return "storage"
}

// FetchResult is the positive outcome of a fetch: the item, tagged with
// where it came from. Peer is the zero NodeID when Provenance is
// FromStorage.
type FetchResult[T any] struct {
	Item       T
	Provenance Provenance
	Peer       p2p.NodeID
}
