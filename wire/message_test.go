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

package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetRequestRoundTrip(t *testing.T) {
	raw, err := NewGetRequest(KindBlock, []byte{0x01, 0x02, 0x03})
	require.NoError(t, err)

	req, err := DecodeGetRequest(raw)
	require.NoError(t, err)
	require.Equal(t, KindBlock, req.Kind)
	require.True(t, bytes.Equal([]byte{0x01, 0x02, 0x03}, req.ID))
}

func TestGetRequestRejectsUnsupportedKind(t *testing.T) {
	_, err := NewGetRequest(ItemKind(99), []byte{0x01})
	require.Error(t, err)
}

func TestGetRequestRejectsOversizedID(t *testing.T) {
	_, err := NewGetRequest(KindDeploy, make([]byte, maxIDLen+1))
	require.Error(t, err)
}

func TestGetRequestRejectsEmptyID(t *testing.T) {
	_, err := NewGetRequest(KindDeploy, nil)
	require.Error(t, err)
}

func TestGetResponseAbsentRoundTrip(t *testing.T) {
	raw, err := NewGetResponse(KindDeploy, []byte{0x01}, nil)
	require.NoError(t, err)

	resp, err := DecodeGetResponse(raw)
	require.NoError(t, err)
	require.True(t, resp.Absent())
}

func TestGetResponsePresentRoundTrip(t *testing.T) {
	raw, err := NewGetResponse(KindDeploy, []byte{0x01}, []byte("item-bytes"))
	require.NoError(t, err)

	resp, err := DecodeGetResponse(raw)
	require.NoError(t, err)
	require.False(t, resp.Absent())
	require.Equal(t, []byte("item-bytes"), resp.Item)
}

func TestItemKindString(t *testing.T) {
	require.Equal(t, "deploy", KindDeploy.String())
	require.Equal(t, "block", KindBlock.String())
	require.Equal(t, "block-by-height", KindBlockByHeight.String())
	require.Contains(t, ItemKind(7).String(), "unknown")
}
