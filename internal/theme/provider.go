// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// provider.go - Context-scoped access to the theme controller.
//
// Call sites that do not own the controller reach it through the
// context. Access outside a provider scope fails loudly with
// ErrMissingProvider instead of silently returning a default.
package theme

import (
	"context"
	"errors"
)

// ErrMissingProvider is returned by FromContext when no controller has
// been placed in the context.
var ErrMissingProvider = errors.New("theme: no controller in context (missing WithController)")

type ctxKey struct{}

// WithController returns a context carrying c.
func WithController(ctx context.Context, c *Controller) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext returns the controller carried by ctx, or
// ErrMissingProvider when the caller is outside a provider scope.
func FromContext(ctx context.Context) (*Controller, error) {
	c, ok := ctx.Value(ctxKey{}).(*Controller)
	if !ok || c == nil {
		return nil, ErrMissingProvider
	}
	return c, nil
}
