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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponderFiresOnce(t *testing.T) {
	var got []*FetchResult[int]
	r := NewResponder(func(result *FetchResult[int]) {
		got = append(got, result)
	})

	r.Respond(&FetchResult[int]{Item: 7, Provenance: FromStorage})
	r.Respond(&FetchResult[int]{Item: 8, Provenance: FromStorage})
	r.Respond(nil)

	require.Len(t, got, 1)
	require.Equal(t, 7, got[0].Item)
}

func TestResponderAcceptsNilResult(t *testing.T) {
	called := false
	r := NewResponder(func(result *FetchResult[int]) {
		called = true
		require.Nil(t, result)
	})
	r.Respond(nil)
	require.True(t, called)
}
