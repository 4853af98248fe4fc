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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abeychain/fetchnode/p2p"
)

var (
	peerA = p2p.NodeID{0x0a}
	peerB = p2p.NodeID{0x0b}
)

func TestSignalAllResolvesEveryPeerBucket(t *testing.T) {
	table := NewResponderTable[int, string]()

	var resultsA, resultsB []*FetchResult[string]
	table.Add(1, peerA, NewResponder(func(r *FetchResult[string]) { resultsA = append(resultsA, r) }))
	table.Add(1, peerB, NewResponder(func(r *FetchResult[string]) { resultsB = append(resultsB, r) }))

	table.SignalAll(1, &FetchResult[string]{Item: "hello", Provenance: FromStorage})

	require.Len(t, resultsA, 1)
	require.Len(t, resultsB, 1)
	require.Equal(t, "hello", resultsA[0].Item)
	require.Equal(t, "hello", resultsB[0].Item)
	require.Equal(t, 0, table.Len(), "no empty entries should linger (invariant 2)")
}

func TestSignalPeerOnlyDrainsItsOwnBucket(t *testing.T) {
	table := NewResponderTable[int, string]()

	var resultsA, resultsB []*FetchResult[string]
	table.Add(1, peerA, NewResponder(func(r *FetchResult[string]) { resultsA = append(resultsA, r) }))
	table.Add(1, peerB, NewResponder(func(r *FetchResult[string]) { resultsB = append(resultsB, r) }))

	table.SignalPeer(1, peerA)

	require.Len(t, resultsA, 1)
	require.Nil(t, resultsA[0])
	require.Empty(t, resultsB, "peer B's bucket must still be pending")
	require.Equal(t, 1, table.Len())
	require.True(t, table.HasPeer(1, peerB))
	require.False(t, table.HasPeer(1, peerA))
}

func TestSignalPeerIsIdempotentOnceDrained(t *testing.T) {
	table := NewResponderTable[int, string]()
	var calls int
	table.Add(1, peerA, NewResponder(func(r *FetchResult[string]) { calls++ }))

	table.SignalPeer(1, peerA)
	// A second signal for the same (id, peer) — e.g. a timeout firing
	// after an AbsentRemotely already drained the bucket — must be a
	// silent no-op, not a repeat delivery or a panic.
	table.SignalPeer(1, peerA)

	require.Equal(t, 1, calls)
	require.Equal(t, 0, table.Len())
}

func TestDuplicateFetchSharesOneStorageQuery(t *testing.T) {
	table := NewResponderTable[int, string]()
	require.False(t, table.HasPeer(42, peerA))

	table.Add(42, peerA, NewResponder(func(*FetchResult[string]) {}))
	require.True(t, table.HasPeer(42, peerA), "a second Fetch for the same (id, peer) should see it's already pending")
}
