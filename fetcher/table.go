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

import (
	mapset "github.com/deckarep/golang-set"

	"github.com/abeychain/fetchnode/p2p"
)

// ResponderTable is the two-level association id -> peer -> pending
// responders. It is only ever touched from the Engine's own loop
// goroutine, so it carries no lock of its own.
type ResponderTable[ID comparable, T any] struct {
	byID map[ID]map[p2p.NodeID][]*Responder[T]
	// peersByID mirrors the inner (peer) keys of byID[id] as a set, used
	// only to answer "which peers are we already waiting on for id" in
	// O(1) without walking the inner map.
	peersByID map[ID]mapset.Set
}

// NewResponderTable constructs an empty table.
func NewResponderTable[ID comparable, T any]() *ResponderTable[ID, T] {
	return &ResponderTable[ID, T]{
		byID:      make(map[ID]map[p2p.NodeID][]*Responder[T]),
		peersByID: make(map[ID]mapset.Set),
	}
}

// Add appends responder to table[id][peer].
func (t *ResponderTable[ID, T]) Add(id ID, peer p2p.NodeID, r *Responder[T]) {
	peers := t.byID[id]
	if peers == nil {
		peers = make(map[p2p.NodeID][]*Responder[T])
		t.byID[id] = peers
		t.peersByID[id] = mapset.NewThreadUnsafeSet()
	}
	peers[peer] = append(peers[peer], r)
	t.peersByID[id].Add(peer)
}

// HasPeer reports whether a responder is already queued for (id, peer),
// i.e. a duplicate Fetch whose storage query or peer request is still
// outstanding.
func (t *ResponderTable[ID, T]) HasPeer(id ID, peer p2p.NodeID) bool {
	peers, ok := t.peersByID[id]
	return ok && peers.Contains(peer)
}

// SignalAll resolves every responder across every peer bucket for id
// with a positive result and removes the outer entry entirely: a single
// physical item arrival satisfies every waiter regardless of which peer
// they individually nominated.
func (t *ResponderTable[ID, T]) SignalAll(id ID, result *FetchResult[T]) {
	peers, ok := t.byID[id]
	if !ok {
		return
	}
	delete(t.byID, id)
	delete(t.peersByID, id)
	for _, responders := range peers {
		for _, r := range responders {
			r.Respond(result)
		}
	}
}

// SignalPeer resolves only table[id][peer] with an explicit absence and
// retains any other peer buckets still pending for id. It is idempotent:
// calling it again once the bucket is already drained — e.g. a
// TimeoutPeer arriving after AbsentRemotely already fired — is a no-op.
func (t *ResponderTable[ID, T]) SignalPeer(id ID, peer p2p.NodeID) {
	peers, ok := t.byID[id]
	if !ok {
		return
	}
	responders, ok := peers[peer]
	if !ok {
		return
	}
	delete(peers, peer)
	t.peersByID[id].Remove(peer)
	if len(peers) == 0 {
		delete(t.byID, id)
		delete(t.peersByID, id)
	}
	for _, r := range responders {
		r.Respond(nil)
	}
}

// Len reports the number of distinct ids with at least one pending
// responder (used by tests asserting invariant 2: no empty entries
// linger).
func (t *ResponderTable[ID, T]) Len() int { return len(t.byID) }
