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
	"github.com/abeychain/fetchnode/common"
	"github.com/abeychain/fetchnode/storage"
	"github.com/abeychain/fetchnode/wire"
)

// NewBlockEngine wires an Engine for the Block item kind: a direct
// point lookup by hash.
func NewBlockEngine(coll storage.Collaborator, transport Transport, cfg Config) *Engine[common.Hash, storage.Block] {
	lookup := func(id common.Hash) (*storage.Block, error) {
		return coll.GetBlock(id)
	}
	encodeID := func(id common.Hash) []byte { return id.Bytes() }
	return New[common.Hash, storage.Block]("block", wire.KindBlock, encodeID, lookup, transport, cfg)
}
