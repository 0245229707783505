// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 The OpenSMA Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package cosmos reads COSMOS strong-motion accelerograph files (versions
// V0 through V3). A file holds a variable number of back-to-back channel
// blocks, each a fixed 14-line text header followed by self-describing
// integer, real, comment and sample sections; the reader walks the blocks
// and returns one typed ChannelRecord per channel, in file order.
package cosmos

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// validMarkers are the record-type markers accepted by the format probe.
var validMarkers = []string{
	"corrected acceleration",
	"uncorrected acceleration",
}

// IsCosmos reports whether the file at path looks like a COSMOS record.
// Only the first line is examined; any read failure means false. Detection
// is advisory and never returns an error.
func IsCosmos(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	sc := bufio.NewScanner(charmap.ISO8859_1.NewDecoder().Reader(f))
	if !sc.Scan() {
		return false
	}
	line := strings.ToLower(sc.Text())
	if strings.ContainsRune(line, 0) {
		return false // binary junk, not a text record
	}
	if !strings.Contains(line, "(format v") {
		return false
	}
	for _, marker := range validMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// ParseFile reads every channel block from the COSMOS file at path. A nil
// opts keeps every channel and the block-supplied location codes.
func ParseFile(path string, opts *Options) ([]ChannelRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, opts)
}

// Parse reads every channel block from r. The input is read once into an
// in-memory line sequence; the scanner then advances a running line offset
// block by block until the end of the file. Any fatal condition aborts the
// whole parse, returning no records and an error locating the bad block.
func Parse(r io.Reader, opts *Options) ([]ChannelRecord, error) {
	if opts == nil {
		opts = &Options{}
	}
	raw, err := io.ReadAll(charmap.ISO8859_1.NewDecoder().Reader(r))
	if err != nil {
		return nil, fmt.Errorf("cosmos: reading input: %w", err)
	}
	lines := splitLines(string(raw))

	var records []ChannelRecord
	offset := 0
	for channel := 0; offset < len(lines); channel++ {
		record, next, err := readChannel(lines, offset, opts.Location)
		if err != nil {
			return nil, fmt.Errorf("cosmos: channel %d starting at line %d: %w", channel, offset+1, err)
		}
		offset = next
		if opts.ValidStationTypes != nil && !slices.Contains(opts.ValidStationTypes, record.Metadata.FormatSpecific.StationCode) {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// readChannel decodes one channel block starting at lines[offset] and
// returns the offset at which the next block (if any) begins.
//
// Block layout: 14 text header lines, of which the last doubles as the
// integer-section descriptor; then the real-header, comment and sample
// sections, each a descriptor line plus its rows; then one end-of-record
// marker line.
func readChannel(lines []string, offset int, location string) (ChannelRecord, int, error) {
	if offset+textHeaderRows > len(lines) {
		return ChannelRecord{}, 0, &SectionFormatError{Line: offset, Msg: "truncated text header"}
	}
	header := lines[offset : offset+textHeaderRows]
	sentinel := blockSentinel(header)

	off := offset + textHeaderRows - 1
	rows, values, _, err := readSection(lines, off)
	if err != nil {
		return ChannelRecord{}, 0, err
	}
	intData := toInt32(values)
	off += rows + 1

	rows, fltData, _, err := readSection(lines, off)
	if err != nil {
		return ChannelRecord{}, 0, err
	}
	off += rows + 1

	rows, _, comments, err := readSection(lines, off)
	if err != nil {
		return ChannelRecord{}, 0, err
	}
	off += rows + 1

	meta, err := mapHeader(intData, fltData, header, comments, sentinel, location)
	if err != nil {
		return ChannelRecord{}, 0, err
	}

	rows, data, _, err := readSection(lines, off)
	if err != nil {
		return ChannelRecord{}, 0, err
	}
	off += rows + 1

	record := ChannelRecord{Metadata: meta, Data: data}
	if meta.ProcessLevel != ProcessLevelV0 {
		// Anything past V0 has already been converted out of raw counts.
		record.Provenance = append(record.Provenance, Provenance{
			Operation:   "remove_response",
			InputUnits:  "counts",
			OutputUnits: "cm/s^2",
		})
	}

	// Skip the end-of-record marker line.
	off++
	return record, off, nil
}

// blockSentinel extracts the block-local "unknown value" marker from the
// text header. Blocks that omit or garble it get the historical default.
func blockSentinel(header []string) int {
	v, err := strconv.Atoi(colSentinel.slice(header[lineSentinel]))
	if err != nil {
		return defaultSentinel
	}
	return v
}

// splitLines breaks the decoded file into lines, tolerating CRLF endings
// and a missing final newline.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
