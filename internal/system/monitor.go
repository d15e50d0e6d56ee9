// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// monitor.go - Live color-scheme change monitoring.
//
// The monitor watches the desktop settings database with fsnotify when
// one exists and polls the detector chain otherwise. Either way the
// chain is re-resolved and subscribers only hear about actual changes.
package system

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// MONITOR
// =============================================================================

// Monitor implements theme.System over a detector chain.
type Monitor struct {
	detectors []Detector
	interval  time.Duration

	mu      sync.Mutex
	subs    map[int]func(dark bool)
	nextID  int
	last    bool
	lastOK  bool
	started bool

	ctx     context.Context
	cancel  context.CancelFunc
	watcher *fsnotify.Watcher
}

// NewMonitor creates a monitor over the default detector chain.
// interval is the polling cadence used when no watchable settings file
// exists.
func NewMonitor(interval time.Duration) *Monitor {
	return NewMonitorWithDetectors(DefaultDetectors(), interval)
}

// NewMonitorWithDetectors creates a monitor over an explicit chain.
func NewMonitorWithDetectors(detectors []Detector, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Monitor{
		detectors: detectors,
		interval:  interval,
		subs:      make(map[int]func(dark bool)),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Detectors returns the chain, for doctor-style reporting.
func (m *Monitor) Detectors() []Detector {
	return m.detectors
}

// PrefersDark resolves the chain. ok is false when no detector could
// produce an answer.
func (m *Monitor) PrefersDark() (bool, bool) {
	dark, ok := Resolve(m.detectors)

	m.mu.Lock()
	m.last, m.lastOK = dark, ok
	m.mu.Unlock()
	return dark, ok
}

// Subscribe registers fn for live preference changes. The watch
// machinery starts with the first subscriber. The returned function
// releases the subscription; releasing twice is safe.
func (m *Monitor) Subscribe(fn func(dark bool)) (func(), error) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn

	if !m.started {
		m.started = true
		// Seed the change comparison before watching.
		if dark, ok := Resolve(m.detectors); ok {
			m.last, m.lastOK = dark, ok
		}
		m.startWatchLocked()
	}
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}, nil
}

// Close stops the watch machinery and drops all subscribers.
func (m *Monitor) Close() error {
	m.cancel()

	m.mu.Lock()
	m.subs = make(map[int]func(dark bool))
	w := m.watcher
	m.watcher = nil
	m.mu.Unlock()

	if w != nil {
		return w.Close()
	}
	return nil
}

// =============================================================================
// WATCH MACHINERY
// =============================================================================

// settingsFile returns a desktop settings path worth watching, if one
// exists on this host. GNOME-family desktops funnel every settings
// write through the dconf user database.
func settingsFile() (string, bool) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	path := filepath.Join(configDir, "dconf", "user")
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// startWatchLocked starts fsnotify on the settings database when
// present, and always starts the polling fallback. Called with m.mu
// held.
func (m *Monitor) startWatchLocked() {
	if path, ok := settingsFile(); ok {
		if w, err := fsnotify.NewWatcher(); err == nil {
			// Watch the directory: dconf replaces the db file on write,
			// and watching the file itself would be lost on rename.
			if err := w.Add(filepath.Dir(path)); err == nil {
				m.watcher = w
				go m.processEvents(w)
			} else {
				w.Close()
			}
		}
	}

	go m.poll()
}

// processEvents re-resolves the chain on settings writes, debounced so
// a burst of dconf updates produces one notification.
func (m *Monitor) processEvents(w *fsnotify.Watcher) {
	var pending <-chan time.Time

	for {
		select {
		case <-m.ctx.Done():
			return

		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				pending = time.After(150 * time.Millisecond)
			}

		case <-pending:
			pending = nil
			m.refresh()

		case _, ok := <-w.Errors:
			if !ok {
				return
			}
			// Non-fatal; polling still covers us.
		}
	}
}

// poll periodically re-resolves the chain.
func (m *Monitor) poll() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.refresh()
		}
	}
}

// refresh re-resolves the chain and notifies subscribers when the
// answer changed.
func (m *Monitor) refresh() {
	dark, ok := Resolve(m.detectors)
	if !ok {
		return
	}

	m.mu.Lock()
	changed := !m.lastOK || dark != m.last
	m.last, m.lastOK = dark, true
	var fns []func(bool)
	if changed {
		fns = make([]func(bool), 0, len(m.subs))
		for _, fn := range m.subs {
			fns = append(fns, fn)
		}
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(dark)
	}
}
