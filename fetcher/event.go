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

import "github.com/abeychain/fetchnode/p2p"

// The five events the engine's loop consumes. There is no explicit
// per-request state object; state lives entirely in the responder table
// between events.

// fetchEvent is "an internal caller requests item id, nominating peer as
// the candidate remote source should storage miss".
type fetchEvent[ID comparable, T any] struct {
	id        ID
	peer      p2p.NodeID
	responder *Responder[T]
}

// storageResultEvent is "storage has answered".
type storageResultEvent[ID comparable, T any] struct {
	id   ID
	peer p2p.NodeID
	item *T
	err  error
}

// remoteEvent is "a remote peer (or client) supplied an item".
type remoteEvent[ID comparable, T any] struct {
	id     ID
	item   T
	source p2p.Source
}

// peerEvent covers both AbsentRemotely ("the nominated peer explicitly
// disclaimed the item") and TimeoutPeer ("the armed per-request timer
// fired") — both resolve identically (signal None to table[id][peer]), so
// they share a shape; which channel delivered it disambiguates only for
// logging and metrics.
type peerEvent[ID comparable] struct {
	id   ID
	peer p2p.NodeID
}
