// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 The OpenSMA Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package cosmos

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/text/encoding/charmap"
)

//go:embed data/fdsn_codes.csv
var fdsnCodesCSV []byte

// fdsnNetworks returns the bundled registry of official network codes,
// keyed by two-letter code, each mapping to a source description. The
// registry is loaded once and never mutated.
var fdsnNetworks = sync.OnceValue(func() map[string]string {
	table, err := loadNetworkTable(bytes.NewReader(fdsnCodesCSV))
	if err != nil {
		// The bundled asset is validated by tests; failing to read it
		// means a broken build, not a bad input file.
		slog.Error("cosmos: bundled network code table unreadable", "err", err)
		return map[string]string{}
	}
	return table
})

// loadNetworkTable reads a latin-1 CSV of (code, name, operator) rows,
// skipping the heading row. The source description is "name, operator".
func loadNetworkTable(r io.Reader) (map[string]string, error) {
	cr := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading network code table: %w", err)
	}
	table := make(map[string]string, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // column headings
		}
		if len(row) < 3 {
			return nil, fmt.Errorf("network code table row %d: want 3 columns, got %d", i+1, len(row))
		}
		code := strings.ToUpper(strings.TrimSpace(row[0]))
		table[code] = strings.TrimSpace(row[1]) + ", " + strings.TrimSpace(row[2])
	}
	return table, nil
}
