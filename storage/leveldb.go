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

package storage

import (
	"encoding/binary"

	lru "github.com/hashicorp/golang-lru"
	"github.com/syndtr/goleveldb/leveldb"
	leveldbStorage "github.com/syndtr/goleveldb/leveldb/storage"
	amino "github.com/tendermint/go-amino"

	"github.com/abeychain/fetchnode/common"
	"github.com/abeychain/fetchnode/log"
)

var cdc = amino.NewCodec()

func init() {
	cdc.RegisterConcrete(Deploy{}, "fetchnode/Deploy", nil)
	cdc.RegisterConcrete(Block{}, "fetchnode/Block", nil)
}

// LevelDB is a Collaborator backed by a LevelDB handle, with an LRU
// read-through cache in front of it so repeated fetches for the same id
// don't re-hit disk every time.
type LevelDB struct {
	db    *leveldb.DB
	cache *lru.Cache
	log   *log.Logger
}

// OpenLevelDB opens (creating if absent) a LevelDB store at path with an
// LRU cache of cacheEntries recently-read values.
func OpenLevelDB(path string, cacheEntries int) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	cache, err := lru.New(cacheEntries)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &LevelDB{db: db, cache: cache, log: log.New("module", "storage")}, nil
}

// OpenMemLevelDB opens an in-memory LevelDB store, for tests that want a
// real Collaborator without touching disk.
func OpenMemLevelDB(cacheEntries int) (*LevelDB, error) {
	db, err := leveldb.Open(leveldbStorage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	cache, err := lru.New(cacheEntries)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &LevelDB{db: db, cache: cache, log: log.New("module", "storage")}, nil
}

// Close releases the underlying LevelDB handle.
func (s *LevelDB) Close() error { return s.db.Close() }

// EncodeDeploy/DecodeDeploy and EncodeBlock/DecodeBlock expose the same
// amino codec used for on-disk persistence to the reactor package, so a
// GetResponse payload and a LevelDB record share one encoding instead of
// a second hand-rolled wire format for item bodies.

// EncodeDeploy renders a Deploy into the bytes carried inside a
// GetResponse's item field.
func EncodeDeploy(d Deploy) ([]byte, error) { return cdc.MarshalBinaryBare(d) }

// DecodeDeploy is the symmetric decoder for an inbound GetResponse's item.
func DecodeDeploy(raw []byte) (Deploy, error) {
	var d Deploy
	err := cdc.UnmarshalBinaryBare(raw, &d)
	return d, err
}

// EncodeBlock renders a Block into its wire form.
func EncodeBlock(b Block) ([]byte, error) { return cdc.MarshalBinaryBare(b) }

// DecodeBlock is the symmetric decoder for an inbound GetResponse's item.
func DecodeBlock(raw []byte) (Block, error) {
	var b Block
	err := cdc.UnmarshalBinaryBare(raw, &b)
	return b, err
}

func deployKey(h common.Hash) []byte { return append([]byte("d:"), h.Bytes()...) }
func blockKey(h common.Hash) []byte  { return append([]byte("b:"), h.Bytes()...) }

func heightKey(height uint64) []byte {
	key := make([]byte, 9)
	key[0] = 'h'
	binary.BigEndian.PutUint64(key[1:], height)
	return key
}

// PutDeploy persists a deploy. The fetcher only ever reads through
// Collaborator; this write side is how a demo/test populates the store.
func (s *LevelDB) PutDeploy(d Deploy) error {
	raw, err := cdc.MarshalBinaryBare(d)
	if err != nil {
		return err
	}
	s.cache.Add(string(deployKey(d.ID_)), d)
	return s.db.Put(deployKey(d.ID_), raw, nil)
}

// PutBlock persists a block under both its hash and height keys so
// GetBlock and GetBlockAtHeight can both serve it.
func (s *LevelDB) PutBlock(b Block) error {
	raw, err := cdc.MarshalBinaryBare(b)
	if err != nil {
		return err
	}
	batch := new(leveldb.Batch)
	batch.Put(blockKey(b.Hash_), raw)
	batch.Put(heightKey(b.Height), raw)
	s.cache.Add(string(blockKey(b.Hash_)), b)
	s.cache.Add(string(heightKey(b.Height)), b)
	return s.db.Write(batch, nil)
}

// GetDeploys implements Collaborator: a positional batch lookup, nil
// entries where a deploy is absent or unreadable.
func (s *LevelDB) GetDeploys(ids []common.Hash) ([]*Deploy, error) {
	out := make([]*Deploy, len(ids))
	for i, id := range ids {
		key := deployKey(id)
		if v, ok := s.cache.Get(string(key)); ok {
			d := v.(Deploy)
			out[i] = &d
			continue
		}
		raw, err := s.db.Get(key, nil)
		if err == leveldb.ErrNotFound {
			continue
		}
		if err != nil {
			s.log.Error("get deploy failed", "err", err, "hash", id)
			continue
		}
		var d Deploy
		if err := cdc.UnmarshalBinaryBare(raw, &d); err != nil {
			s.log.Error("decode deploy failed", "err", err, "hash", id)
			continue
		}
		s.cache.Add(string(key), d)
		out[i] = &d
	}
	return out, nil
}

// GetBlock implements Collaborator: a direct point lookup by hash.
func (s *LevelDB) GetBlock(hash common.Hash) (*Block, error) {
	return s.getBlockByKey(blockKey(hash))
}

// GetBlockAtHeight implements Collaborator: lookup by linear-chain height.
func (s *LevelDB) GetBlockAtHeight(height uint64) (*Block, error) {
	return s.getBlockByKey(heightKey(height))
}

func (s *LevelDB) getBlockByKey(key []byte) (*Block, error) {
	if v, ok := s.cache.Get(string(key)); ok {
		b := v.(Block)
		return &b, nil
	}
	raw, err := s.db.Get(key, nil)
	if err == leveldb.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		s.log.Error("get block failed", "err", err)
		return nil, nil
	}
	var b Block
	if err := cdc.UnmarshalBinaryBare(raw, &b); err != nil {
		s.log.Error("decode block failed", "err", err)
		return nil, nil
	}
	s.cache.Add(string(key), b)
	return &b, nil
}
