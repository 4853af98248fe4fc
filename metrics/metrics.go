// Copyright 2016 The go-ethereum Authors
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

// Package metrics wraps github.com/rcrowley/go-metrics with the
// Enabled-gated, nil-registry-tolerant helpers the node's components call
// ("metrics.NewRegisteredMeter(name, nil)"), the same shape as
// abey/fetcher/metrics.go used against go-ethereum's own metrics package.
package metrics

import gometrics "github.com/rcrowley/go-metrics"

// Enabled controls whether metric collection is actually performed. It
// defaults to true; tests and short-lived CLI invocations may set it to
// false to avoid registry growth across repeated runs.
var Enabled = true

// NewRegisteredMeter constructs and registers a new meter metric on the
// given registry (the default registry if nil is passed, mirroring every
// "metrics.NewRegisteredMeter(name, nil)" call site in the pack).
func NewRegisteredMeter(name string, r gometrics.Registry) gometrics.Meter {
	if !Enabled {
		return gometrics.NilMeter{}
	}
	if r == nil {
		r = gometrics.DefaultRegistry
	}
	return gometrics.GetOrRegisterMeter(name, r)
}

// NewRegisteredTimer constructs and registers a new timer metric.
func NewRegisteredTimer(name string, r gometrics.Registry) gometrics.Timer {
	if !Enabled {
		return gometrics.NilTimer{}
	}
	if r == nil {
		r = gometrics.DefaultRegistry
	}
	return gometrics.GetOrRegisterTimer(name, r)
}

// NewRegisteredGauge constructs and registers a new gauge metric.
func NewRegisteredGauge(name string, r gometrics.Registry) gometrics.Gauge {
	if !Enabled {
		return gometrics.NilGauge{}
	}
	if r == nil {
		r = gometrics.DefaultRegistry
	}
	return gometrics.GetOrRegisterGauge(name, r)
}
