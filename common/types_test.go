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

package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeccak256HashIsDeterministic(t *testing.T) {
	a := Keccak256Hash([]byte("payload"))
	b := Keccak256Hash([]byte("payload"))
	require.Equal(t, a, b)
}

func TestKeccak256HashDiffersOnDifferentInput(t *testing.T) {
	a := Keccak256Hash([]byte("payload-a"))
	b := Keccak256Hash([]byte("payload-b"))
	require.NotEqual(t, a, b)
}

func TestHexToHashRoundTrip(t *testing.T) {
	h := Keccak256Hash([]byte("x"))
	require.Equal(t, h, HexToHash(h.Hex()))
}
