// Copyright (c) 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"crypto/sha256"
	"errors"
	"strings"
)

// ErrChecksum indicates that the checksum of a check-encoded string does not verify against
// the checksum.
var ErrChecksum = errors.New("checksum error")

// ErrInvalidFormat indicates that the check-encoded string has an invalid format.
var ErrInvalidFormat = errors.New("invalid format: VC and/or checksum bytes missing")

// checksum: first four bytes of sha256^2
func checksum(input []byte) (cksum [4]byte) {
	h := sha256.Sum256(input)
	h2 := sha256.Sum256(h[:])
	copy(cksum[:], h2[:4])
	return
}

// CheckEncode prepends ver to input and appends a four byte checksum, so
// a decoder can both verify integrity and reject an address of a kind it
// wasn't expecting.
func CheckEncode(ver byte, input []byte) string {
	b := make([]byte, 0, 1+len(input)+4)
	b = append(b, ver)
	b = append(b, input...)
	cksum := checksum(b)
	b = append(b, cksum[:]...)
	return "ABEY" + Encode(b)
}

// CheckDecode decodes a string produced by CheckEncode, verifies its
// checksum, and returns the version byte and payload separately.
func CheckDecode(input string) (ver byte, payload []byte, err error) {
	if len(input) < 4 || strings.Compare("ABEY", input[0:4]) != 0 {
		return 0, nil, ErrInvalidFormat
	}
	decoded := Decode(input[4:])
	if len(decoded) < 5 {
		return 0, nil, ErrInvalidFormat
	}

	var cksum [4]byte
	copy(cksum[:], decoded[len(decoded)-4:])
	if checksum(decoded[:len(decoded)-4]) != cksum {
		return 0, nil, ErrChecksum
	}
	ver = decoded[0]
	payload = decoded[1 : len(decoded)-4]
	return ver, payload, nil
}
