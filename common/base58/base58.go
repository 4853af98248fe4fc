// Copyright (c) 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import "math/big"

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var (
	bigRadix = big.NewInt(58)
	bigZero  = big.NewInt(0)
)

// Encode encodes a byte slice to a modified base58 string, the same
// alphabet btcd's address encoding uses.
func Encode(b []byte) string {
	x := new(big.Int)
	x.SetBytes(b)

	answer := make([]byte, 0, len(b)*136/100)
	mod := new(big.Int)
	for x.Cmp(bigZero) > 0 {
		x.DivMod(x, bigRadix, mod)
		answer = append(answer, alphabet[mod.Int64()])
	}

	for _, i := range b {
		if i != 0 {
			break
		}
		answer = append(answer, alphabet[0])
	}

	for i, j := 0, len(answer)-1; i < j; i, j = i+1, j-1 {
		answer[i], answer[j] = answer[j], answer[i]
	}
	return string(answer)
}

// Decode decodes a modified base58 string to a byte slice. It returns an
// empty slice on invalid input rather than an error, matching btcd's
// base58 decoder the caller is expected to check via CheckDecode instead.
func Decode(s string) []byte {
	answer := big.NewInt(0)
	scratch := new(big.Int)
	for _, c := range []byte(s) {
		idx := indexOf(c)
		if idx == -1 {
			return []byte{}
		}
		scratch.SetInt64(int64(idx))
		answer.Mul(answer, bigRadix)
		answer.Add(answer, scratch)
	}

	decoded := answer.Bytes()
	numZeros := 0
	for numZeros < len(s) && s[numZeros] == alphabet[0] {
		numZeros++
	}
	out := make([]byte, numZeros+len(decoded))
	copy(out[numZeros:], decoded)
	return out
}

func indexOf(c byte) int {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == c {
			return i
		}
	}
	return -1
}
