package input

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks router activity.
type Metrics struct {
	// Event counters
	keyEventsTotal  atomic.Uint64
	chordsTotal     atomic.Uint64
	commitsTotal    atomic.Uint64
	commandsTotal   atomic.Uint64
	repeatsIgnored  atomic.Uint64
	protocolErrors  atomic.Uint64
	ambiguousChords atomic.Uint64

	// Chord hold durations
	mu              sync.RWMutex
	chordDurations  []time.Duration
	maxSamples      int
	durationIdx     int
	durationSamples int

	// Peak chord duration (all time)
	peakChord atomic.Int64

	// Start time for uptime calculation
	startTime time.Time

	// Enable flag
	enabled atomic.Bool
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		chordDurations: make([]time.Duration, 256),
		maxSamples:     256,
		startTime:      time.Now(),
	}
	m.enabled.Store(true)
	return m
}

// SetEnabled enables or disables metrics collection.
func (m *Metrics) SetEnabled(enabled bool) {
	m.enabled.Store(enabled)
}

// IsEnabled returns whether metrics collection is enabled.
func (m *Metrics) IsEnabled() bool {
	return m.enabled.Load()
}

// RecordKeyEvent records a press or release.
func (m *Metrics) RecordKeyEvent() {
	if !m.enabled.Load() {
		return
	}
	m.keyEventsTotal.Add(1)
}

// RecordChord records a completed chord and how long it was held.
func (m *Metrics) RecordChord(held time.Duration) {
	if !m.enabled.Load() {
		return
	}

	m.chordsTotal.Add(1)

	// Update peak duration
	ns := held.Nanoseconds()
	for {
		current := m.peakChord.Load()
		if ns <= current {
			break
		}
		if m.peakChord.CompareAndSwap(current, ns) {
			break
		}
	}

	// Store in circular buffer
	m.mu.Lock()
	m.chordDurations[m.durationIdx] = held
	m.durationIdx = (m.durationIdx + 1) % m.maxSamples
	if m.durationSamples < m.maxSamples {
		m.durationSamples++
	}
	m.mu.Unlock()
}

// RecordCommit records a chord that committed a cell.
func (m *Metrics) RecordCommit() {
	if !m.enabled.Load() {
		return
	}
	m.commitsTotal.Add(1)
}

// RecordCommand records a chord that executed a command.
func (m *Metrics) RecordCommand() {
	if !m.enabled.Load() {
		return
	}
	m.commandsTotal.Add(1)
}

// RecordRepeat records an ignored auto-repeat press.
func (m *Metrics) RecordRepeat() {
	if !m.enabled.Load() {
		return
	}
	m.repeatsIgnored.Add(1)
}

// RecordProtocolError records a release without a matching press.
func (m *Metrics) RecordProtocolError() {
	if !m.enabled.Load() {
		return
	}
	m.protocolErrors.Add(1)
}

// RecordAmbiguous records a chord with several command keys and no dots.
func (m *Metrics) RecordAmbiguous() {
	if !m.enabled.Load() {
		return
	}
	m.ambiguousChords.Add(1)
}

// MetricsSnapshot holds a point-in-time view of metrics.
type MetricsSnapshot struct {
	// Counters
	KeyEventsTotal  uint64
	ChordsTotal     uint64
	CommitsTotal    uint64
	CommandsTotal   uint64
	RepeatsIgnored  uint64
	ProtocolErrors  uint64
	AmbiguousChords uint64

	// Chord hold stats
	AvgChordDuration  time.Duration
	PeakChordDuration time.Duration

	// Uptime
	Uptime time.Duration
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	var total time.Duration
	for i := 0; i < m.durationSamples; i++ {
		total += m.chordDurations[i]
	}
	samples := m.durationSamples
	m.mu.RUnlock()

	snap := MetricsSnapshot{
		KeyEventsTotal:    m.keyEventsTotal.Load(),
		ChordsTotal:       m.chordsTotal.Load(),
		CommitsTotal:      m.commitsTotal.Load(),
		CommandsTotal:     m.commandsTotal.Load(),
		RepeatsIgnored:    m.repeatsIgnored.Load(),
		ProtocolErrors:    m.protocolErrors.Load(),
		AmbiguousChords:   m.ambiguousChords.Load(),
		PeakChordDuration: time.Duration(m.peakChord.Load()),
		Uptime:            time.Since(m.startTime),
	}
	if samples > 0 {
		snap.AvgChordDuration = total / time.Duration(samples)
	}
	return snap
}

// Reset clears all counters and samples.
func (m *Metrics) Reset() {
	m.keyEventsTotal.Store(0)
	m.chordsTotal.Store(0)
	m.commitsTotal.Store(0)
	m.commandsTotal.Store(0)
	m.repeatsIgnored.Store(0)
	m.protocolErrors.Store(0)
	m.ambiguousChords.Store(0)
	m.peakChord.Store(0)

	m.mu.Lock()
	for i := range m.chordDurations {
		m.chordDurations[i] = 0
	}
	m.durationIdx = 0
	m.durationSamples = 0
	m.startTime = time.Now()
	m.mu.Unlock()
}
