// Copyright 2018 The go-ethereum Authors
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

// Package wire is the fetcher's only contact with the network transport:
// it builds the typed GetRequest sent to a peer and decodes the
// GetResponse a peer answers with. Construction can fail synchronously:
// an unsupported item kind, or an empty or oversized id, are rejected
// before a single byte reaches the transport.
package wire

import (
	"fmt"

	amino "github.com/tendermint/go-amino"

	"github.com/pkg/errors"
)

// ItemKind tags which kind of item a GetRequest/GetResponse concerns.
type ItemKind uint8

const (
	KindDeploy ItemKind = iota + 1
	KindBlock
	KindBlockByHeight
)

func (k ItemKind) String() string {
	switch k {
	case KindDeploy:
		return "deploy"
	case KindBlock:
		return "block"
	case KindBlockByHeight:
		return "block-by-height"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// maxIDLen bounds the size of an id accepted into a GetRequest. Both known
// id encodings (a 32 byte hash, an 8 byte big-endian height) fit within
// it, the hash exactly; anything larger indicates a malformed caller.
const maxIDLen = 32

// cdc is the amino codec used to serialize GetRequest/GetResponse frames.
// Only the two frame types are registered; an unknown item kind is
// rejected by NewGetRequest's own check, not by the codec.
var cdc = amino.NewCodec()

func init() {
	cdc.RegisterConcrete(&GetRequest{}, "fetchnode/GetRequest", nil)
	cdc.RegisterConcrete(&GetResponse{}, "fetchnode/GetResponse", nil)
}

// GetRequest asks a peer for a single item, identified by its wire id
// bytes (a Hash, or a big-endian height — see fetcher/deploy.go et al.).
type GetRequest struct {
	Kind ItemKind
	ID   []byte
}

// NewGetRequest validates and encodes a GetRequest. An unsupported kind
// or an empty or oversized id is rejected here, before send.
func NewGetRequest(kind ItemKind, id []byte) ([]byte, error) {
	switch kind {
	case KindDeploy, KindBlock, KindBlockByHeight:
	default:
		return nil, fmt.Errorf("wire: unsupported item kind %v", kind)
	}
	if len(id) == 0 || len(id) > maxIDLen {
		return nil, fmt.Errorf("wire: id length %d out of bounds", len(id))
	}
	raw, err := cdc.MarshalBinaryBare(&GetRequest{Kind: kind, ID: id})
	if err != nil {
		// Wrapped with a stack trace, so a caller can
		// pkg/errors.Cause() it down to the underlying amino failure.
		return nil, errors.Wrap(err, "wire: encode get request")
	}
	return raw, nil
}

// DecodeGetRequest is the peer side's symmetric decoder.
func DecodeGetRequest(data []byte) (*GetRequest, error) {
	req := new(GetRequest)
	if err := cdc.UnmarshalBinaryBare(data, req); err != nil {
		return nil, err
	}
	return req, nil
}

// GetResponse is a peer's answer to a GetRequest: either the item's raw
// encoded bytes, or an explicit absence (Item == nil).
type GetResponse struct {
	Kind ItemKind
	ID   []byte
	Item []byte // nil => item not held by the peer
}

// NewGetResponse encodes a response. Absent is represented as a nil Item.
func NewGetResponse(kind ItemKind, id []byte, item []byte) ([]byte, error) {
	return cdc.MarshalBinaryBare(&GetResponse{Kind: kind, ID: id, Item: item})
}

// DecodeGetResponse is the requester side's decoder for an inbound answer.
func DecodeGetResponse(data []byte) (*GetResponse, error) {
	resp := new(GetResponse)
	if err := cdc.UnmarshalBinaryBare(data, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Absent reports whether this response carries an explicit "don't have it".
func (r *GetResponse) Absent() bool { return r.Item == nil }
