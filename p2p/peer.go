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

// Package p2p identifies the remote nodes the fetcher can ask for items.
// The full transport (dialing, handshakes, protocol multiplexing) is an
// external collaborator specified only at its interface edge; this
// package supplies just the NodeID identity and the Source provenance
// tag; the Transport seam the fetcher's peer request issuer sends through
// is declared in the fetcher package.
package p2p

import (
	"encoding/hex"
	"errors"

	"github.com/btcsuite/btcd/btcec"

	"github.com/abeychain/fetchnode/common/base58"
)

// NodeID is a peer's identity: the compressed secp256k1 public key of its
// node key, the same identity scheme the pack's go-ethereum-lineage forks
// use to key peers (enode ids), trimmed here to the compressed form since
// the fetcher only needs an opaque, hashable, comparable, cheap-to-clone
// identifier.
type NodeID [33]byte

// ErrInvalidNodeID is returned when decoding a malformed public key.
var ErrInvalidNodeID = errors.New("p2p: invalid node id")

// NodeIDFromPubKey derives a NodeID from a peer's public key.
func NodeIDFromPubKey(pub *btcec.PublicKey) NodeID {
	var id NodeID
	copy(id[:], pub.SerializeCompressed())
	return id
}

// ParseNodeID decodes a hex-encoded compressed public key into a NodeID,
// validating that it actually lies on the curve.
func ParseNodeID(hexID string) (NodeID, error) {
	raw, err := hex.DecodeString(hexID)
	if err != nil || len(raw) != 33 {
		return NodeID{}, ErrInvalidNodeID
	}
	if _, err := btcec.ParsePubKey(raw, btcec.S256()); err != nil {
		return NodeID{}, ErrInvalidNodeID
	}
	var id NodeID
	copy(id[:], raw)
	return id, nil
}

// String renders the NodeID the way peers are named in log lines.
func (id NodeID) String() string { return hex.EncodeToString(id[:]) }

// TerminalString is a shortened rendering for compact log fields.
func (id NodeID) TerminalString() string {
	return hex.EncodeToString(id[:4])
}

// nodeIDVersion tags a CheckString address as carrying a NodeID payload,
// so ParseCheckString can reject an address encoded for some other
// purpose before it ever reaches btcec.
const nodeIDVersion = 0x01

// CheckString renders the NodeID as a checksummed base58 address, a
// human-facing alternative to the raw hex identity String returns (log
// lines use String).
func (id NodeID) CheckString() string { return base58.CheckEncode(nodeIDVersion, id[:]) }

// ParseCheckString is the symmetric decoder for CheckString.
func ParseCheckString(s string) (NodeID, error) {
	ver, raw, err := base58.CheckDecode(s)
	if err != nil || ver != nodeIDVersion || len(raw) != 33 {
		return NodeID{}, ErrInvalidNodeID
	}
	if _, err := btcec.ParsePubKey(raw, btcec.S256()); err != nil {
		return NodeID{}, ErrInvalidNodeID
	}
	var out NodeID
	copy(out[:], raw)
	return out, nil
}

// IsZero reports whether id is the zero value (used as the placeholder
// peer for items resolved locally, which carry no remote provenance).
func (id NodeID) IsZero() bool { return id == NodeID{} }

// Source identifies where an inbound item arrived from: either a named
// peer, or the node's own RPC client — the client case is accepted but
// left inert, since a client-sourced delivery has no peer bucket to
// drain.
type Source struct {
	peer     NodeID
	isClient bool
}

// FromPeer builds a Source naming the originating peer.
func FromPeer(id NodeID) Source { return Source{peer: id} }

// FromClient builds the inert, locally-originated Source.
func FromClient() Source { return Source{isClient: true} }

// Peer returns the originating peer and true, or the zero NodeID and
// false if this Source came from the local client.
func (s Source) Peer() (NodeID, bool) {
	if s.isClient {
		return NodeID{}, false
	}
	return s.peer, true
}

// IsClient reports whether this Source is the inert client-origin case.
func (s Source) IsClient() bool { return s.isClient }
