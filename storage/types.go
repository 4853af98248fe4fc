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

// Package storage is the external storage collaborator the fetcher
// queries on a miss-then-ask-peer basis. This package gives that
// collaborator a concrete, if modest, implementation backed by LevelDB
// so the fetcher package has something real to exercise.
package storage

import "github.com/abeychain/fetchnode/common"

// Deploy is the node's transaction-like unit, identified by its content
// hash and resolved by a point lookup against that hash.
type Deploy struct {
	ID_     common.Hash
	Payload []byte
}

// FetchID implements fetcher.Item[common.Hash].
func (d Deploy) FetchID() common.Hash { return d.ID_ }

// NewDeploy derives a content-addressed Deploy from its payload, the
// canonical way to construct one (rather than assigning an arbitrary id)
// so that two nodes holding identical payloads agree on the id.
func NewDeploy(payload []byte) Deploy {
	return Deploy{ID_: common.Keccak256Hash(payload), Payload: payload}
}

// Block is identified by its hash for direct lookups, and also carries
// its height so it can serve the BlockByHeight adapter.
type Block struct {
	Hash_   common.Hash
	Height  uint64
	Payload []byte
}

// FetchID implements fetcher.Item[common.Hash].
func (b Block) FetchID() common.Hash { return b.Hash_ }

// BlockByHeight wraps a Block so it can be fetched by its linear-chain
// height instead of its hash.
type BlockByHeight struct {
	Block Block
}

// FetchID implements fetcher.Item[uint64].
func (b BlockByHeight) FetchID() uint64 { return b.Block.Height }

// Collaborator is the external storage engine the fetcher's per-kind
// adapters query. Every method returns a slice/pointer that may be
// nil/empty plus an error; the fetcher folds a returned error into a
// miss. The LevelDB implementation logs its own read and decode errors,
// treats them as misses, and always returns a nil error.
type Collaborator interface {
	// GetDeploys returns one *Deploy per id, positionally, nil where
	// absent.
	GetDeploys(ids []common.Hash) ([]*Deploy, error)
	// GetBlock performs a point lookup by hash.
	GetBlock(hash common.Hash) (*Block, error)
	// GetBlockAtHeight looks the block up by linear-chain height.
	GetBlockAtHeight(height uint64) (*Block, error)
}
