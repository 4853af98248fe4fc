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

// Contains the metrics collected by the fetcher, one registered set per
// item kind (mirrors abey/fetcher/metrics.go).

package fetcher

import (
	gometrics "github.com/rcrowley/go-metrics"

	"github.com/abeychain/fetchnode/metrics"
)

// engineMetrics is the set of counters a single Engine[ID, T] reports
// under "fetcher/<kind>/...".
type engineMetrics struct {
	fetchIn         gometrics.Meter
	storageHit      gometrics.Meter
	storageMiss     gometrics.Meter
	peerRequestOut  gometrics.Meter
	peerRequestFail gometrics.Meter
	peerGot         gometrics.Meter
	peerAbsent      gometrics.Meter
	peerTimeout     gometrics.Meter
}

func newEngineMetrics(kind string) *engineMetrics {
	prefix := "fetcher/" + kind + "/"
	return &engineMetrics{
		fetchIn:         metrics.NewRegisteredMeter(prefix+"fetch/in", nil),
		storageHit:      metrics.NewRegisteredMeter(prefix+"storage/hit", nil),
		storageMiss:     metrics.NewRegisteredMeter(prefix+"storage/miss", nil),
		peerRequestOut:  metrics.NewRegisteredMeter(prefix+"peer/request/out", nil),
		peerRequestFail: metrics.NewRegisteredMeter(prefix+"peer/request/fail", nil),
		peerGot:         metrics.NewRegisteredMeter(prefix+"peer/got", nil),
		peerAbsent:      metrics.NewRegisteredMeter(prefix+"peer/absent", nil),
		peerTimeout:     metrics.NewRegisteredMeter(prefix+"peer/timeout", nil),
	}
}
