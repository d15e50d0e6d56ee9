// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// controller.go - Theme state machine for shade.
//
// The controller is the only writer to the presentation surface and to
// the persisted preference. Applying and persisting a theme happen
// together before the mutating call returns, so a synchronous reader
// never observes the surface and the active theme disagreeing.
package theme

import (
	"fmt"
	"sync"
)

// =============================================================================
// COLLABORATOR INTERFACES
// =============================================================================

// Store persists the theme preference across sessions.
// Implementations live in internal/store.
type Store interface {
	// Get returns the raw value for key, and whether it was present.
	Get(key string) (string, bool)

	// Set writes value under key.
	Set(key, value string) error
}

// System exposes the host's color-scheme preference.
// Implementations live in internal/system.
type System interface {
	// PrefersDark returns the system preference. ok is false when no
	// detector could produce an answer.
	PrefersDark() (dark bool, ok bool)

	// Subscribe registers fn for live preference changes and returns a
	// function that releases the subscription.
	Subscribe(fn func(dark bool)) (cancel func(), err error)
}

// Surface is the rendering target a theme is applied to. Apply must be
// idempotent: applying the same theme twice leaves the surface exactly
// as applying it once.
type Surface interface {
	Apply(t Theme)
}

// =============================================================================
// RESOLUTION SOURCE
// =============================================================================

// Source records which preference source produced the active theme.
type Source int

const (
	// SourceDefault means the built-in default was used (no stored or
	// system preference was available).
	SourceDefault Source = iota
	// SourceStored means a persisted preference won the resolution.
	SourceStored
	// SourceSystem means the system color-scheme preference was used.
	SourceSystem
	// SourceUser means an explicit Set or Toggle in this session.
	SourceUser
)

func (s Source) String() string {
	switch s {
	case SourceStored:
		return "stored"
	case SourceSystem:
		return "system"
	case SourceUser:
		return "user"
	default:
		return "default"
	}
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller owns the active theme and keeps the store and the surface
// in agreement with it.
//
// All operations are safe for concurrent use; the system monitor
// delivers change notifications on its own goroutine, and the mutex
// keeps the single-logical-writer rule intact.
type Controller struct {
	mu      sync.Mutex
	store   Store
	system  System
	surface Surface

	active      Theme
	fallback    Theme // resolution default when no source answers
	source      Source
	initialized bool
	degraded    bool // store was unavailable during Initialize

	cancel func() // releases the system subscription
}

// New creates a controller that falls back to Light. Any collaborator
// may be nil; the controller then degrades to the default instead of
// failing.
func New(store Store, system System, surface Surface) *Controller {
	return NewWithDefault(store, system, surface, Light)
}

// NewWithDefault creates a controller whose resolution falls back to
// def when neither a stored nor a system preference is available.
// An invalid def is replaced with Light.
func NewWithDefault(store Store, system System, surface Surface, def Theme) *Controller {
	if !def.Valid() {
		def = Light
	}
	return &Controller{
		store:    store,
		system:   system,
		surface:  surface,
		active:   def,
		fallback: def,
	}
}

// Initialize resolves the starting theme as stored ?? system ??
// default, applies it to the surface, and writes it back to the store
// so the resolution is durable for future sessions. Exactly one
// resolution happens per controller lifetime; later calls return the
// active theme unchanged. The surface is never touched before the
// first resolution completes.
func (c *Controller) Initialize() Theme {
	c.mu.Lock()
	if c.initialized {
		cur := c.active
		c.mu.Unlock()
		return cur
	}

	resolved := c.fallback
	source := SourceDefault
	c.degraded = c.store == nil

	if stored, ok := c.storedLocked(); ok {
		resolved = stored
		source = SourceStored
	} else if c.system != nil {
		if dark, ok := c.system.PrefersDark(); ok {
			resolved = FromDark(dark)
			source = SourceSystem
		}
	}

	c.active = resolved
	c.source = source
	c.initialized = true

	// Write-back is idempotent and deliberate even when the resolved
	// value equals the default: it makes this session's resolution the
	// stored preference for every future session.
	c.applyLocked(resolved)
	c.mu.Unlock()

	// Subscribe outside the lock; the monitor may fire immediately.
	if c.system != nil {
		if cancel, err := c.system.Subscribe(c.onSystemChange); err == nil {
			c.mu.Lock()
			c.cancel = cancel
			c.mu.Unlock()
		}
	}
	return resolved
}

// Theme returns the active theme.
func (c *Controller) Theme() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Source returns which preference source produced the active theme.
func (c *Controller) Source() Source {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.source
}

// Initialized reports whether the first resolution has completed.
func (c *Controller) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// Degraded reports whether Initialize ran without a usable store.
func (c *Controller) Degraded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.degraded
}

// Set makes next the active theme. Values outside {light, dark} are
// rejected with ErrInvalidTheme and leave state unchanged. Setting the
// already-active theme re-applies without error and produces no
// observable change. Before Initialize the new value is recorded but no
// side effects run.
func (c *Controller) Set(next Theme) error {
	if !next.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, string(next))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = next
	c.source = SourceUser
	if !c.initialized {
		return nil
	}
	return c.applyLocked(next)
}

// Toggle switches to the opposite theme and returns it.
func (c *Controller) Toggle() (Theme, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.active.Opposite()
	c.active = next
	c.source = SourceUser
	if !c.initialized {
		return next, nil
	}
	if err := c.applyLocked(next); err != nil {
		return next, err
	}
	return next, nil
}

// Close releases the system subscription. The controller remains
// readable afterwards; it just stops receiving change notifications.
func (c *Controller) Close() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// onSystemChange is the entry point for live system color-scheme
// changes. An explicit stored preference always wins: once the store
// holds a valid value the notification is ignored, so an OS-level
// switch never silently overrides a choice the user already made.
func (c *Controller) onSystemChange(dark bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.storedLocked(); ok {
		return
	}
	next := FromDark(dark)
	c.active = next
	c.source = SourceSystem
	if c.initialized {
		_ = c.applyLocked(next)
	}
}

// storedLocked reads the persisted preference. Unrecognized values are
// treated as absent, not as errors; resolution falls through to the
// next source.
func (c *Controller) storedLocked() (Theme, bool) {
	if c.store == nil {
		return "", false
	}
	raw, ok := c.store.Get(PreferenceKey)
	if !ok {
		return "", false
	}
	t, err := Parse(raw)
	if err != nil {
		return "", false
	}
	return t, true
}

// applyLocked projects the theme onto the surface and persists it.
// Both writes complete before the caller's operation returns.
func (c *Controller) applyLocked(t Theme) error {
	if c.surface != nil {
		c.surface.Apply(t)
	}
	if c.store == nil {
		return nil
	}
	if err := c.store.Set(PreferenceKey, t.String()); err != nil {
		return fmt.Errorf("persist theme preference: %w", err)
	}
	return nil
}
