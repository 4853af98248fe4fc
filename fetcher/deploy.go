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

// NewDeployEngine wires an Engine for the Deploy item kind against a
// storage collaborator. The batch-size invariant (in = out = 1) is
// asserted here at the adapter rather than trusted from the collaborator.
func NewDeployEngine(coll storage.Collaborator, transport Transport, cfg Config) *Engine[common.Hash, storage.Deploy] {
	lookup := func(id common.Hash) (*storage.Deploy, error) {
		batch, err := coll.GetDeploys([]common.Hash{id})
		if err != nil {
			return nil, err
		}
		if len(batch) != 1 {
			panic("storage: GetDeploys returned a batch of different size than requested")
		}
		return batch[0], nil
	}
	encodeID := func(id common.Hash) []byte { return id.Bytes() }
	return New[common.Hash, storage.Deploy]("deploy", wire.KindDeploy, encodeID, lookup, transport, cfg)
}
