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

// Package common holds the small value types shared by the fetcher, storage
// and wire packages: content-addressed hashes and hex helpers.
package common

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// HashLength is the expected length of the hash, in bytes.
const HashLength = 32

// Hash represents the 32 byte output of a content hash. Deploys and blocks
// are both identified by a Hash; it is comparable and therefore usable
// directly as a map key in the responder table.
type Hash [HashLength]byte

// BytesToHash sets b to hash. If b is larger than len(h), b will be cropped
// from the left.
func BytesToHash(b []byte) Hash {
	var h Hash
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
	return h
}

// HexToHash sets byte representation of s to hash. If s is larger than
// len(h), s will be cropped from the left.
func HexToHash(s string) Hash {
	b, err := hex.DecodeString(trim0x(s))
	if err != nil {
		return Hash{}
	}
	return BytesToHash(b)
}

func trim0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// Bytes returns the byte representation of the hash.
func (h Hash) Bytes() []byte { return h[:] }

// Hex returns a "0x"-prefixed hex string representation of the hash.
func (h Hash) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

// String implements fmt.Stringer, a short fixed-size debug rendering.
func (h Hash) String() string { return h.Hex() }

// TerminalString implements a shortened variant for logs.
func (h Hash) TerminalString() string {
	return fmt.Sprintf("%x…%x", h[:3], h[len(h)-3:])
}

// IsZero reports whether the hash is the zero value.
func (h Hash) IsZero() bool { return h == Hash{} }

// Keccak256Hash derives the content hash identifying a deploy or block,
// the same digest the pack's go-ethereum-lineage repos use for content
// addressing.
func Keccak256Hash(data ...[]byte) Hash {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	var h Hash
	d.Sum(h[:0])
	return h
}
