// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package system

import "github.com/jeranaias/shade/internal/theme"

// QueryOnly wraps a System so that Subscribe hands out an inert
// subscription. Used when system.follow is disabled: the preference is
// still consulted during resolution, but live changes are not watched.
func QueryOnly(inner theme.System) theme.System {
	return queryOnly{inner: inner}
}

type queryOnly struct {
	inner theme.System
}

func (q queryOnly) PrefersDark() (bool, bool) {
	return q.inner.PrefersDark()
}

func (q queryOnly) Subscribe(func(dark bool)) (func(), error) {
	return func() {}, nil
}
