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
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abeychain/fetchnode/p2p"
	"github.com/abeychain/fetchnode/wire"
)

// testItem is a minimal Item[int] used only by these tests.
type testItem struct {
	id      int
	payload string
}

func (i testItem) FetchID() int { return i.id }

// fakeTransport records every SendGetRequest call and lets a test script
// canned failures per peer.
type fakeTransport struct {
	mu       sync.Mutex
	sent     []p2p.NodeID
	failWith error
}

func (f *fakeTransport) SendGetRequest(peer p2p.NodeID, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, peer)
	return f.failWith
}

func (f *fakeTransport) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func awaitResult(t *testing.T, ch chan *FetchResult[testItem]) *FetchResult[testItem] {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for responder to fire")
		return nil
	}
}

func newTestEngine(t *testing.T, lookup StorageLookup[int, testItem], transport Transport, cfg Config) *Engine[int, testItem] {
	t.Helper()
	encodeID := func(id int) []byte { return []byte{byte(id)} }
	e := New[int, testItem]("test", wire.KindDeploy, encodeID, lookup, transport, cfg)
	e.Start()
	t.Cleanup(e.Stop)
	return e
}

func TestFetchResolvesFromStorage(t *testing.T) {
	lookup := func(id int) (*testItem, error) {
		return &testItem{id: id, payload: "from-disk"}, nil
	}
	transport := &fakeTransport{}
	e := newTestEngine(t, lookup, transport, DefaultConfig)

	ch := make(chan *FetchResult[testItem], 1)
	require.NoError(t, e.Fetch(1, peerA, NewResponder(func(r *FetchResult[testItem]) { ch <- r })))

	result := awaitResult(t, ch)
	require.Equal(t, FromStorage, result.Provenance)
	require.Equal(t, "from-disk", result.Item.payload)
	require.Equal(t, 0, transport.sentCount(), "storage hit must never contact a peer")
}

func TestFetchFallsBackToPeerOnStorageMiss(t *testing.T) {
	lookup := func(id int) (*testItem, error) { return nil, nil }
	transport := &fakeTransport{}
	e := newTestEngine(t, lookup, transport, DefaultConfig)

	ch := make(chan *FetchResult[testItem], 1)
	require.NoError(t, e.Fetch(2, peerA, NewResponder(func(r *FetchResult[testItem]) { ch <- r })))

	require.NoError(t, e.NotifyGotRemotely(testItem{id: 2, payload: "from-peer"}, p2p.FromPeer(peerA)))

	result := awaitResult(t, ch)
	require.Equal(t, FromPeer, result.Provenance)
	require.Equal(t, peerA, result.Peer)
	require.Equal(t, "from-peer", result.Item.payload)
}

func TestAbsentRemotelyResolvesOnlyThatPeer(t *testing.T) {
	lookup := func(id int) (*testItem, error) { return nil, nil }
	transport := &fakeTransport{}
	e := newTestEngine(t, lookup, transport, DefaultConfig)

	chA := make(chan *FetchResult[testItem], 1)
	chB := make(chan *FetchResult[testItem], 1)
	require.NoError(t, e.Fetch(3, peerA, NewResponder(func(r *FetchResult[testItem]) { chA <- r })))
	require.NoError(t, e.Fetch(3, peerB, NewResponder(func(r *FetchResult[testItem]) { chB <- r })))

	require.NoError(t, e.NotifyAbsentRemotely(3, peerA))
	resultA := awaitResult(t, chA)
	require.Nil(t, resultA)

	select {
	case <-chB:
		t.Fatal("peer B's responder should not have fired yet")
	case <-time.After(100 * time.Millisecond):
	}

	require.NoError(t, e.NotifyGotRemotely(testItem{id: 3, payload: "from-b"}, p2p.FromPeer(peerB)))
	resultB := awaitResult(t, chB)
	require.Equal(t, "from-b", resultB.Item.payload)
}

func TestPeerTimeoutResolvesAbsence(t *testing.T) {
	lookup := func(id int) (*testItem, error) { return nil, nil }
	transport := &fakeTransport{}
	e := newTestEngine(t, lookup, transport, Config{GetFromPeerTimeoutSeconds: 0})

	ch := make(chan *FetchResult[testItem], 1)
	require.NoError(t, e.Fetch(4, peerA, NewResponder(func(r *FetchResult[testItem]) { ch <- r })))

	result := awaitResult(t, ch)
	require.Nil(t, result)
}

func TestStorageErrorFoldsIntoMiss(t *testing.T) {
	lookup := func(id int) (*testItem, error) { return nil, errors.New("disk on fire") }
	transport := &fakeTransport{}
	e := newTestEngine(t, lookup, transport, DefaultConfig)

	ch := make(chan *FetchResult[testItem], 1)
	require.NoError(t, e.Fetch(5, peerA, NewResponder(func(r *FetchResult[testItem]) { ch <- r })))

	require.Eventually(t, func() bool { return transport.sentCount() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, e.NotifyAbsentRemotely(5, peerA))
	result := awaitResult(t, ch)
	require.Nil(t, result)
}

func TestSendFailureResolvesAbsenceWithNoTimeoutArmed(t *testing.T) {
	lookup := func(id int) (*testItem, error) { return nil, nil }
	transport := &fakeTransport{failWith: errors.New("peer unreachable")}
	e := newTestEngine(t, lookup, transport, DefaultConfig)

	ch := make(chan *FetchResult[testItem], 1)
	require.NoError(t, e.Fetch(6, peerA, NewResponder(func(r *FetchResult[testItem]) { ch <- r })))

	result := awaitResult(t, ch)
	require.Nil(t, result)
}

func TestClientSourcedDeliveryIsInert(t *testing.T) {
	lookup := func(id int) (*testItem, error) { return nil, nil }
	transport := &fakeTransport{}
	e := newTestEngine(t, lookup, transport, DefaultConfig)

	ch := make(chan *FetchResult[testItem], 1)
	require.NoError(t, e.Fetch(7, peerA, NewResponder(func(r *FetchResult[testItem]) { ch <- r })))

	require.NoError(t, e.NotifyGotRemotely(testItem{id: 7}, p2p.FromClient()))

	select {
	case <-ch:
		t.Fatal("a client-sourced delivery must not resolve a peer-nominated responder")
	case <-time.After(150 * time.Millisecond):
	}

	require.NoError(t, e.NotifyAbsentRemotely(7, peerA))
	result := awaitResult(t, ch)
	require.Nil(t, result)
}

func TestStopUnblocksPendingCalls(t *testing.T) {
	lookup := func(id int) (*testItem, error) {
		time.Sleep(50 * time.Millisecond)
		return nil, nil
	}
	encodeID := func(id int) []byte { return []byte{byte(id)} }
	e := New[int, testItem]("test", wire.KindDeploy, encodeID, lookup, &fakeTransport{}, DefaultConfig)
	e.Start()
	e.Stop()

	err := e.Fetch(8, peerA, NewResponder(func(*FetchResult[testItem]) {}))
	require.ErrorIs(t, err, ErrTerminated)
}
