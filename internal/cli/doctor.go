// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// doctor.go - `shade doctor` handler.
//
// Doctor is the one place where quiet degradation is surfaced loudly:
// an unrecognized stored value, a store that cannot be opened, or a
// detector chain with no answer all print here, even though the
// controller shrugs them off at runtime.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jeranaias/shade/internal/config"
	"github.com/jeranaias/shade/internal/store"
	"github.com/jeranaias/shade/internal/system"
	"github.com/jeranaias/shade/internal/theme"
)

type doctorDetector struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Answer    string `json:"answer,omitempty"`
}

type doctorReport struct {
	ConfigPath  string           `json:"config_path"`
	ConfigOK    bool             `json:"config_ok"`
	ConfigError string           `json:"config_error,omitempty"`
	Detectors   []doctorDetector `json:"detectors"`
	Resolved    string           `json:"system_resolved,omitempty"`
	Backend     string           `json:"backend,omitempty"`
	StorePath   string           `json:"store_path,omitempty"`
	StoreOK     bool             `json:"store_ok"`
	StoreError  string           `json:"store_error,omitempty"`
	Stored      string           `json:"stored,omitempty"`
	StoredNote  string           `json:"stored_note,omitempty"`
}

// HandleDoctor probes every collaborator and reports what works.
func HandleDoctor(args *Args) error {
	report := runDoctor()

	if args.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return wrapErr("doctor", enc.Encode(report))
	}

	fmt.Printf("Config:    %s", report.ConfigPath)
	if report.ConfigOK {
		fmt.Println("  ok")
	} else {
		fmt.Printf("  FAIL (%s)\n", report.ConfigError)
	}

	fmt.Println("Detectors:")
	for _, d := range report.Detectors {
		switch {
		case !d.Available:
			fmt.Printf("  %-16s unavailable\n", d.Name)
		case d.Answer == "":
			fmt.Printf("  %-16s available, no answer\n", d.Name)
		default:
			fmt.Printf("  %-16s %s\n", d.Name, d.Answer)
		}
	}
	if report.Resolved != "" {
		fmt.Printf("System preference: %s\n", report.Resolved)
	} else {
		fmt.Println("System preference: undetected (startup will fall back to the default theme)")
	}

	if report.Backend != "" {
		fmt.Printf("Store:     %s (%s)", report.StorePath, report.Backend)
		if report.StoreOK {
			fmt.Println("  ok")
		} else {
			fmt.Printf("  FAIL (%s)\n", report.StoreError)
		}
	}
	if report.StoredNote != "" {
		fmt.Printf("Warning:   %s\n", report.StoredNote)
	}
	return nil
}

func runDoctor() doctorReport {
	var report doctorReport

	report.ConfigPath, _ = config.ConfigPath()
	cfg, err := config.Load()
	if err != nil {
		report.ConfigError = err.Error()
		// Probe the detectors anyway; they do not need config.
		cfg = nil
	} else {
		report.ConfigOK = true
	}

	for _, d := range system.DefaultDetectors() {
		entry := doctorDetector{Name: d.Name(), Available: d.Available()}
		if entry.Available {
			if dark, ok := d.Detect(); ok {
				entry.Answer = theme.FromDark(dark).String()
			}
		}
		report.Detectors = append(report.Detectors, entry)
	}
	if dark, ok := system.Resolve(system.DefaultDetectors()); ok {
		report.Resolved = theme.FromDark(dark).String()
	}

	if cfg == nil {
		return report
	}

	report.Backend = cfg.Storage.Backend
	report.StorePath, _ = cfg.StorePath()

	st, closer, err := store.Open(cfg)
	if err != nil {
		report.StoreError = err.Error()
		return report
	}
	defer closer()

	report.StoreOK = true
	if raw, ok := st.Get(theme.PreferenceKey); ok {
		report.Stored = raw
		if _, err := theme.Parse(raw); err != nil {
			report.StoredNote = fmt.Sprintf(
				"stored preference %q is not a valid theme; it is ignored at startup", raw)
		}
	}
	return report
}
