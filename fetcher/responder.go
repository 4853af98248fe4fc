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
	"sync/atomic"

	"github.com/abeychain/fetchnode/log"
)

// Responder is a single-use callback delivering the terminal result of one
// fetch: either a *FetchResult[T], or nil for an explicit absence. Go has
// no affine types, so the one-shot contract is enforced at runtime with a
// fired flag rather than at compile time.
type Responder[T any] struct {
	deliver func(*FetchResult[T])
	fired   int32
}

// NewResponder wraps deliver as a one-shot Responder.
func NewResponder[T any](deliver func(*FetchResult[T])) *Responder[T] {
	return &Responder[T]{deliver: deliver}
}

// Respond signals the responder. Calling it a second time is a logged
// no-op rather than a panic. An armed timeout firing after an
// AbsentRemotely already drained the bucket never gets this far (the
// table's SignalPeer is already a no-op for a drained bucket), so the
// guard here only catches genuine double-dispatch bugs, via the log line.
func (r *Responder[T]) Respond(result *FetchResult[T]) {
	if !atomic.CompareAndSwapInt32(&r.fired, 0, 1) {
		log.Error("fetcher: responder signalled more than once, ignoring")
		return
	}
	r.deliver(result)
}
