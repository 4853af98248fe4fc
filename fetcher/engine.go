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
	"time"

	"github.com/abeychain/fetchnode/log"
	"github.com/abeychain/fetchnode/p2p"
	"github.com/abeychain/fetchnode/wire"
)

// ErrTerminated is returned by any public Engine method once Stop has been
// called and the loop has exited.
var ErrTerminated = errors.New("fetcher: terminated")

// StorageLookup is the per-kind storage adapter's query function:
// translate id into a point lookup against the external storage
// collaborator. A storage-layer error is folded into "not found" for the
// caller's purposes — the adapter returns it unchanged and the engine
// logs it when the storage result is handled.
type StorageLookup[ID comparable, T any] func(id ID) (*T, error)

// IDEncoder renders an id into the bytes carried on the wire inside a
// GetRequest.
type IDEncoder[ID comparable] func(ID) []byte

// Transport is the network seam the peer request issuer sends through:
// a fire-and-forget send of an already-encoded request to a named peer.
type Transport interface {
	SendGetRequest(peer p2p.NodeID, payload []byte) error
}

// Engine is the generic fetch controller: it owns one ResponderTable for
// a single item kind and drives it by consuming fetch, storage-result,
// remote-delivery, absence and timeout events one at a time off its own
// channels, on its own goroutine — a single-threaded cooperative reactor,
// so the table never needs its own lock.
type Engine[ID comparable, T Item[ID]] struct {
	kind      wire.ItemKind
	encodeID  IDEncoder[ID]
	lookup    StorageLookup[ID, T]
	transport Transport
	timeout   time.Duration

	table *ResponderTable[ID, T]

	fetchCh   chan fetchEvent[ID, T]
	storageCh chan storageResultEvent[ID, T]
	remoteCh  chan remoteEvent[ID, T]
	absentCh  chan peerEvent[ID]
	timeoutCh chan peerEvent[ID]
	quit      chan struct{}

	log     log.Logger
	metrics *engineMetrics
}

// New constructs an Engine for one item kind. kindName is used only for
// metrics/log namespacing (e.g. "deploy", "block", "block-by-height").
func New[ID comparable, T Item[ID]](
	kindName string,
	kind wire.ItemKind,
	encodeID IDEncoder[ID],
	lookup StorageLookup[ID, T],
	transport Transport,
	cfg Config,
) *Engine[ID, T] {
	return &Engine[ID, T]{
		kind:      kind,
		encodeID:  encodeID,
		lookup:    lookup,
		transport: transport,
		timeout:   cfg.PeerTimeout(),
		table:     NewResponderTable[ID, T](),
		fetchCh:   make(chan fetchEvent[ID, T]),
		storageCh: make(chan storageResultEvent[ID, T]),
		remoteCh:  make(chan remoteEvent[ID, T]),
		absentCh:  make(chan peerEvent[ID]),
		timeoutCh: make(chan peerEvent[ID]),
		quit:      make(chan struct{}),
		log:       *log.New("kind", kindName),
		metrics:   newEngineMetrics(kindName),
	}
}

// Start boots the engine's loop goroutine.
func (e *Engine[ID, T]) Start() { go e.loop() }

// Stop terminates the loop, unblocking any callers waiting in Fetch et al.
func (e *Engine[ID, T]) Stop() { close(e.quit) }

// Fetch is the public entry point: another component of this node asks
// to be handed the item for id. peer nominates the candidate remote
// source should storage miss; responder is delivered to exactly once.
func (e *Engine[ID, T]) Fetch(id ID, peer p2p.NodeID, responder *Responder[T]) error {
	select {
	case e.fetchCh <- fetchEvent[ID, T]{id: id, peer: peer, responder: responder}:
		return nil
	case <-e.quit:
		return ErrTerminated
	}
}

// NotifyGotRemotely feeds in an item a remote peer (or the local client)
// supplied unsolicited or as a GetResponse reply.
func (e *Engine[ID, T]) NotifyGotRemotely(item T, source p2p.Source) error {
	select {
	case e.remoteCh <- remoteEvent[ID, T]{id: item.FetchID(), item: item, source: source}:
		return nil
	case <-e.quit:
		return ErrTerminated
	}
}

// NotifyAbsentRemotely feeds in a peer's explicit "I don't have it" reply.
func (e *Engine[ID, T]) NotifyAbsentRemotely(id ID, peer p2p.NodeID) error {
	select {
	case e.absentCh <- peerEvent[ID]{id: id, peer: peer}:
		return nil
	case <-e.quit:
		return ErrTerminated
	}
}

func (e *Engine[ID, T]) loop() {
	for {
		select {
		case <-e.quit:
			return

		case ev := <-e.fetchCh:
			e.handleFetch(ev)

		case ev := <-e.storageCh:
			e.handleStorageResult(ev)

		case ev := <-e.remoteCh:
			e.handleGotRemotely(ev)

		case ev := <-e.absentCh:
			e.metrics.peerAbsent.Mark(1)
			e.log.Debug("handling event", "event", "AbsentRemotely", "peer", ev.peer)
			e.table.SignalPeer(ev.id, ev.peer)

		case ev := <-e.timeoutCh:
			e.metrics.peerTimeout.Mark(1)
			e.log.Debug("handling event", "event", "TimeoutPeer", "peer", ev.peer)
			e.table.SignalPeer(ev.id, ev.peer)
		}
	}
}

// handleFetch appends responder to table[id][peer] and kicks off a
// storage query; the peer is not contacted yet. A duplicate Fetch for an
// (id, peer) pair that's already pending only grows the responder
// bucket — whatever resolves the first one (its in-flight storage query,
// or the peer request that followed a miss) resolves it too, so a second
// query is skipped.
func (e *Engine[ID, T]) handleFetch(ev fetchEvent[ID, T]) {
	e.metrics.fetchIn.Mark(1)
	e.log.Debug("handling event", "event", "Fetch", "peer", ev.peer)
	duplicate := e.table.HasPeer(ev.id, ev.peer)
	e.table.Add(ev.id, ev.peer, ev.responder)
	if duplicate {
		return
	}
	e.queryStorage(ev.id, ev.peer)
}

// queryStorage runs the per-kind storage adapter off the loop goroutine —
// it may block on disk I/O — and folds its answer back in as a
// storage-result event on the loop's own channel.
func (e *Engine[ID, T]) queryStorage(id ID, peer p2p.NodeID) {
	go func() {
		item, err := e.lookup(id)
		select {
		case e.storageCh <- storageResultEvent[ID, T]{id: id, peer: peer, item: item, err: err}:
		case <-e.quit:
		}
	}()
}

// handleStorageResult acts on a completed storage lookup: a hit resolves
// every pending responder for the id, a miss falls through to requesting
// the item from the peer nominated by the Fetch that issued this query.
func (e *Engine[ID, T]) handleStorageResult(ev storageResultEvent[ID, T]) {
	e.log.Debug("handling event", "event", "GetFromStorageResult", "peer", ev.peer, "hit", ev.item != nil)
	if ev.err != nil {
		// Storage failure is logged here and folded into a miss.
		e.log.Error("storage lookup failed", "err", ev.err, "peer", ev.peer)
		ev.item = nil
	}
	if ev.item != nil {
		e.metrics.storageHit.Mark(1)
		e.table.SignalAll(ev.id, &FetchResult[T]{Item: *ev.item, Provenance: FromStorage})
		return
	}
	e.metrics.storageMiss.Mark(1)
	e.requestFromPeer(ev.id, ev.peer)
}

// requestFromPeer is the peer request issuer: construct the GetRequest,
// send it, and arm the per-request timeout. Construction failure and a
// transport send error are the two synchronous error paths; each is
// peer-scoped absence, with no timer armed.
func (e *Engine[ID, T]) requestFromPeer(id ID, peer p2p.NodeID) {
	payload, err := wire.NewGetRequest(e.kind, e.encodeID(id))
	if err != nil {
		e.log.Error("failed to construct get request", "err", err, "peer", peer)
		e.table.SignalPeer(id, peer)
		return
	}
	if err := e.transport.SendGetRequest(peer, payload); err != nil {
		e.metrics.peerRequestFail.Mark(1)
		e.log.Error("failed to send get request", "err", err, "peer", peer)
		e.table.SignalPeer(id, peer)
		return
	}
	e.metrics.peerRequestOut.Mark(1)
	e.armTimeout(id, peer)
}

// armTimeout schedules a TimeoutPeer event after the configured peer
// timeout. It is never cancelled on success: correctness instead relies
// on SignalPeer's idempotence once the bucket is already drained.
func (e *Engine[ID, T]) armTimeout(id ID, peer p2p.NodeID) {
	time.AfterFunc(e.timeout, func() {
		select {
		case e.timeoutCh <- peerEvent[ID]{id: id, peer: peer}:
		case <-e.quit:
		}
	})
}

// handleGotRemotely resolves every responder across every peer bucket
// for the item's id. A positive reply attributed to the local client
// rather than a named peer is an intentional no-op: there is no peer
// bucket to drain for it.
func (e *Engine[ID, T]) handleGotRemotely(ev remoteEvent[ID, T]) {
	peer, fromPeer := ev.source.Peer()
	if !fromPeer {
		e.log.Debug("handling event", "event", "GotRemotely", "source", "client")
		return
	}
	e.metrics.peerGot.Mark(1)
	e.log.Debug("handling event", "event", "GotRemotely", "peer", peer)
	e.table.SignalAll(ev.id, &FetchResult[T]{Item: ev.item, Provenance: FromPeer, Peer: peer})
}
