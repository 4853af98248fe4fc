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

package p2p

import (
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/stretchr/testify/require"
)

func testNodeID(t *testing.T) NodeID {
	t.Helper()
	priv, err := btcec.NewPrivateKey(btcec.S256())
	require.NoError(t, err)
	return NodeIDFromPubKey(priv.PubKey())
}

func TestNodeIDHexRoundTrip(t *testing.T) {
	id := testNodeID(t)
	parsed, err := ParseNodeID(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestNodeIDCheckStringRoundTrip(t *testing.T) {
	id := testNodeID(t)
	parsed, err := ParseCheckString(id.CheckString())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseNodeIDRejectsGarbage(t *testing.T) {
	_, err := ParseNodeID("not-hex")
	require.ErrorIs(t, err, ErrInvalidNodeID)
}

func TestSourceClientIsInert(t *testing.T) {
	s := FromClient()
	_, fromPeer := s.Peer()
	require.False(t, fromPeer)
	require.True(t, s.IsClient())
}

func TestSourceFromPeer(t *testing.T) {
	id := testNodeID(t)
	s := FromPeer(id)
	got, fromPeer := s.Peer()
	require.True(t, fromPeer)
	require.Equal(t, id, got)
	require.False(t, s.IsClient())
}
