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

// Package reactor is the glue between the network transport and the three
// per-kind fetcher engines: it decodes inbound wire frames and routes them
// to the matching Engine, and it answers inbound GetRequests out of the
// local storage collaborator.
package reactor

import (
	"github.com/pborman/uuid"

	"github.com/abeychain/fetchnode/common"
	"github.com/abeychain/fetchnode/fetcher"
	"github.com/abeychain/fetchnode/log"
	"github.com/abeychain/fetchnode/p2p"
	"github.com/abeychain/fetchnode/storage"
	"github.com/abeychain/fetchnode/wire"
)

// PeerSender is the network seam a Reactor sends outbound frames through.
// A concrete implementation lives outside this module's scope; tests
// supply a fake.
type PeerSender interface {
	Send(peer p2p.NodeID, payload []byte) error
}

// Reactor owns the three per-kind engines and the local storage
// collaborator used to answer peers' inbound requests.
type Reactor struct {
	deploys        *fetcher.Engine[common.Hash, storage.Deploy]
	blocks         *fetcher.Engine[common.Hash, storage.Block]
	blocksByHeight *fetcher.Engine[uint64, storage.BlockByHeight]

	coll   storage.Collaborator
	sender PeerSender
	log    *log.Logger
}

// New builds a Reactor and the three engines it owns, ready for Start.
func New(coll storage.Collaborator, sender PeerSender, cfg fetcher.Config) *Reactor {
	r := &Reactor{coll: coll, sender: sender, log: log.New("module", "reactor")}
	t := transportFunc(sender.Send)
	r.deploys = fetcher.NewDeployEngine(coll, t, cfg)
	r.blocks = fetcher.NewBlockEngine(coll, t, cfg)
	r.blocksByHeight = fetcher.NewBlockByHeightEngine(coll, t, cfg)
	return r
}

// transportFunc adapts a PeerSender.Send method value to fetcher.Transport.
type transportFunc func(peer p2p.NodeID, payload []byte) error

func (f transportFunc) SendGetRequest(peer p2p.NodeID, payload []byte) error { return f(peer, payload) }

// Start boots all three engines' loops.
func (r *Reactor) Start() {
	r.deploys.Start()
	r.blocks.Start()
	r.blocksByHeight.Start()
}

// Stop terminates all three engines.
func (r *Reactor) Stop() {
	r.deploys.Stop()
	r.blocks.Stop()
	r.blocksByHeight.Stop()
}

// FetchDeploy, FetchBlock and FetchBlockByHeight are the node-internal
// entry points: an internal caller asks for an item, nominating peer as
// the candidate remote source on a storage miss. Each stamps a
// correlation id across the log lines of the resulting async round trip,
// since the engine itself carries no request object to tag.

func (r *Reactor) FetchDeploy(id common.Hash, peer p2p.NodeID, responder *fetcher.Responder[storage.Deploy]) error {
	cid := uuid.NewRandom()
	r.log.Debug("fetch", "correlation", cid, "kind", "deploy", "id", id, "peer", peer)
	return r.deploys.Fetch(id, peer, responder)
}

func (r *Reactor) FetchBlock(id common.Hash, peer p2p.NodeID, responder *fetcher.Responder[storage.Block]) error {
	cid := uuid.NewRandom()
	r.log.Debug("fetch", "correlation", cid, "kind", "block", "id", id, "peer", peer)
	return r.blocks.Fetch(id, peer, responder)
}

func (r *Reactor) FetchBlockByHeight(height uint64, peer p2p.NodeID, responder *fetcher.Responder[storage.BlockByHeight]) error {
	cid := uuid.NewRandom()
	r.log.Debug("fetch", "correlation", cid, "kind", "block-by-height", "height", height, "peer", peer)
	return r.blocksByHeight.Fetch(height, peer, responder)
}

// HandleGetRequest answers an inbound GetRequest out of local storage and
// sends a GetResponse back to from, with a nil item when storage misses.
func (r *Reactor) HandleGetRequest(from p2p.NodeID, payload []byte) error {
	req, err := wire.DecodeGetRequest(payload)
	if err != nil {
		r.log.Error("failed to decode get request", "err", err, "peer", from)
		return err
	}
	var item []byte
	switch req.Kind {
	case wire.KindDeploy:
		item, err = r.answerDeploy(req.ID)
	case wire.KindBlock:
		item, err = r.answerBlock(req.ID)
	case wire.KindBlockByHeight:
		item, err = r.answerBlockByHeight(req.ID)
	default:
		r.log.Warn("get request for unknown item kind", "kind", req.Kind, "peer", from)
		return nil
	}
	if err != nil {
		r.log.Error("storage lookup failed answering get request", "err", err, "peer", from)
		item = nil
	}
	resp, err := wire.NewGetResponse(req.Kind, req.ID, item)
	if err != nil {
		return err
	}
	return r.sender.Send(from, resp)
}

func (r *Reactor) answerDeploy(rawID []byte) ([]byte, error) {
	batch, err := r.coll.GetDeploys([]common.Hash{common.BytesToHash(rawID)})
	if err != nil || len(batch) == 0 || batch[0] == nil {
		return nil, err
	}
	return storage.EncodeDeploy(*batch[0])
}

func (r *Reactor) answerBlock(rawID []byte) ([]byte, error) {
	block, err := r.coll.GetBlock(common.BytesToHash(rawID))
	if err != nil || block == nil {
		return nil, err
	}
	return storage.EncodeBlock(*block)
}

func (r *Reactor) answerBlockByHeight(rawID []byte) ([]byte, error) {
	height := decodeHeight(rawID)
	block, err := r.coll.GetBlockAtHeight(height)
	if err != nil || block == nil {
		return nil, err
	}
	return storage.EncodeBlock(*block)
}

// HandleGetResponse routes an inbound reply to the matching engine,
// decoding the item body with the same codec storage itself uses.
func (r *Reactor) HandleGetResponse(from p2p.NodeID, payload []byte) error {
	resp, err := wire.DecodeGetResponse(payload)
	if err != nil {
		r.log.Error("failed to decode get response", "err", err, "peer", from)
		return err
	}
	source := p2p.FromPeer(from)
	switch resp.Kind {
	case wire.KindDeploy:
		if resp.Absent() {
			return r.deploys.NotifyAbsentRemotely(common.BytesToHash(resp.ID), from)
		}
		d, err := storage.DecodeDeploy(resp.Item)
		if err != nil {
			return err
		}
		return r.deploys.NotifyGotRemotely(d, source)

	case wire.KindBlock:
		if resp.Absent() {
			return r.blocks.NotifyAbsentRemotely(common.BytesToHash(resp.ID), from)
		}
		b, err := storage.DecodeBlock(resp.Item)
		if err != nil {
			return err
		}
		return r.blocks.NotifyGotRemotely(b, source)

	case wire.KindBlockByHeight:
		height := decodeHeight(resp.ID)
		if resp.Absent() {
			return r.blocksByHeight.NotifyAbsentRemotely(height, from)
		}
		b, err := storage.DecodeBlock(resp.Item)
		if err != nil {
			return err
		}
		return r.blocksByHeight.NotifyGotRemotely(storage.BlockByHeight{Block: b}, source)

	default:
		r.log.Warn("get response for unknown item kind", "kind", resp.Kind, "peer", from)
		return nil
	}
}

func decodeHeight(raw []byte) uint64 {
	var height uint64
	for _, b := range raw {
		height = height<<8 | uint64(b)
	}
	return height
}
