package app

import (
	"sync/atomic"
	"time"
)

// Metrics counts key dispatches, renders and reloads.
type Metrics struct {
	// Key dispatch
	keysHandled   atomic.Uint64
	keysUnbound   atomic.Uint64
	dispatchNs    atomic.Int64
	dispatchMaxNs atomic.Int64

	// Rendering
	renderCount   atomic.Uint64
	renderTotalNs atomic.Int64

	// Configuration
	reloads       atomic.Uint64
	reloadsFailed atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordKey records one key dispatch and whether a shortcut ran.
func (m *Metrics) RecordKey(duration time.Duration, handled bool) {
	if handled {
		m.keysHandled.Add(1)
	} else {
		m.keysUnbound.Add(1)
	}

	ns := duration.Nanoseconds()
	m.dispatchNs.Add(ns)

	// Update max (atomic compare-and-swap loop)
	for {
		old := m.dispatchMaxNs.Load()
		if ns <= old {
			break
		}
		if m.dispatchMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordRender records render timing.
func (m *Metrics) RecordRender(duration time.Duration) {
	m.renderCount.Add(1)
	m.renderTotalNs.Add(duration.Nanoseconds())
}

// RecordReload records a configuration reload.
func (m *Metrics) RecordReload(ok bool) {
	m.reloads.Add(1)
	if !ok {
		m.reloadsFailed.Add(1)
	}
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	KeysHandled   uint64
	KeysUnbound   uint64
	AvgDispatch   time.Duration
	MaxDispatch   time.Duration
	Renders       uint64
	AvgRender     time.Duration
	Reloads       uint64
	ReloadsFailed uint64
	Uptime        time.Duration
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		KeysHandled:   m.keysHandled.Load(),
		KeysUnbound:   m.keysUnbound.Load(),
		MaxDispatch:   time.Duration(m.dispatchMaxNs.Load()),
		Renders:       m.renderCount.Load(),
		Reloads:       m.reloads.Load(),
		ReloadsFailed: m.reloadsFailed.Load(),
		Uptime:        time.Since(m.startTime),
	}
	if keys := s.KeysHandled + s.KeysUnbound; keys > 0 {
		s.AvgDispatch = time.Duration(m.dispatchNs.Load() / int64(keys))
	}
	if s.Renders > 0 {
		s.AvgRender = time.Duration(m.renderTotalNs.Load() / int64(s.Renders))
	}
	return s
}

// Keys returns the total number of dispatched keys.
func (s MetricsSnapshot) Keys() uint64 {
	return s.KeysHandled + s.KeysUnbound
}

// Metrics returns the application's metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}
