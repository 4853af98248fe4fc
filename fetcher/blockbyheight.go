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
	"encoding/binary"

	"github.com/abeychain/fetchnode/storage"
	"github.com/abeychain/fetchnode/wire"
)

// NewBlockByHeightEngine wires an Engine for the BlockByHeight item
// kind: storage is queried by linear-chain height, and the returned
// Block is wrapped into the BlockByHeight shape before being folded
// into the storage-result event.
func NewBlockByHeightEngine(coll storage.Collaborator, transport Transport, cfg Config) *Engine[uint64, storage.BlockByHeight] {
	lookup := func(height uint64) (*storage.BlockByHeight, error) {
		block, err := coll.GetBlockAtHeight(height)
		if err != nil {
			return nil, err
		}
		if block == nil {
			return nil, nil
		}
		return &storage.BlockByHeight{Block: *block}, nil
	}
	encodeID := func(height uint64) []byte {
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, height)
		return buf
	}
	return New[uint64, storage.BlockByHeight]("block-by-height", wire.KindBlockByHeight, encodeID, lookup, transport, cfg)
}
