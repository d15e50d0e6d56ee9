// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history.go - `shade history` handler.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jeranaias/shade/internal/store"
)

// historyRow is the machine-readable shape of one preference change.
type historyRow struct {
	Value     string `json:"value"`
	Source    string `json:"source"`
	ChangedAt string `json:"changed_at"`
}

// HandleHistory lists recent preference changes. Only the sqlite
// backend records history.
func HandleHistory(app *App, args *Args) error {
	s, ok := app.SQLite()
	if !ok {
		return wrapErr("history", fmt.Errorf(
			"history requires the sqlite backend (storage.backend = %q)", app.Config.Storage.Backend))
	}

	records, err := s.History(args.Limit)
	if err != nil {
		return wrapErr("history", err)
	}

	if args.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return wrapErr("history", enc.Encode(historyRows(records)))
	}

	if len(records) == 0 {
		fmt.Println("No preference changes recorded yet.")
		return nil
	}

	for _, r := range records {
		fmt.Println(formatChangeRecord(r))
	}
	return nil
}

// historyRows converts records to their JSON shape, timestamps in
// RFC 3339.
func historyRows(records []store.ChangeRecord) []historyRow {
	out := make([]historyRow, 0, len(records))
	for _, r := range records {
		out = append(out, historyRow{
			Value:     r.Value,
			Source:    r.Source,
			ChangedAt: r.ChangedAt.Format(time.RFC3339),
		})
	}
	return out
}

func formatChangeRecord(r store.ChangeRecord) string {
	return fmt.Sprintf("%s  %-5s  %s",
		r.ChangedAt.Format("2006-01-02 15:04:05"), r.Value, r.Source)
}
