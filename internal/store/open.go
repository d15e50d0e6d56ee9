// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"fmt"

	"github.com/jeranaias/shade/internal/config"
	"github.com/jeranaias/shade/internal/theme"
)

// Open creates the preference store selected by the configuration.
// The returned closer is a no-op for backends without resources to
// release.
func Open(cfg *config.Config) (theme.Store, func() error, error) {
	path, err := cfg.StorePath()
	if err != nil {
		return nil, nil, err
	}

	switch cfg.Storage.Backend {
	case "sqlite":
		s, err := NewSQLiteStore(path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "file":
		s, err := NewFileStore(path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
