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
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// formatSpec is a decoded Fortran-style packing descriptor such as (10I8)
// or (5F10.4): columns values per row, each fieldWidth characters wide.
type formatSpec struct {
	columns    int
	fieldWidth int
}

var digitsRe = regexp.MustCompile(`\d+`)

// parseFormatSpec extracts the packing descriptor embedded after the
// "format=" marker of a section descriptor line.
func parseFormatSpec(desc string) (formatSpec, error) {
	s := strings.ToLower(strings.ReplaceAll(desc, " ", ""))
	i := strings.Index(s, "format=")
	if i < 0 {
		return formatSpec{}, fmt.Errorf("no format= marker in descriptor %q", strings.TrimSpace(desc))
	}
	nums := digitsRe.FindAllString(s[i+len("format="):], 2)
	if len(nums) < 2 {
		return formatSpec{}, fmt.Errorf("no <columns><width> pair in descriptor %q", strings.TrimSpace(desc))
	}
	columns, _ := strconv.Atoi(nums[0])
	width, _ := strconv.Atoi(nums[1])
	if columns <= 0 || width <= 0 {
		return formatSpec{}, fmt.Errorf("bad format code %s/%s in descriptor %q", nums[0], nums[1], strings.TrimSpace(desc))
	}
	return formatSpec{columns: columns, fieldWidth: width}, nil
}

// readSection decodes one self-describing section whose descriptor line is
// lines[offset]. The descriptor's first token is the element count; a
// descriptor containing "comment" introduces that many raw text lines,
// anything else a format= packing of fixed-width numeric rows.
//
// rows is the number of data lines consumed after the descriptor. Exactly
// one of values and comments is non-nil.
func readSection(lines []string, offset int) (rows int, values []float64, comments []string, err error) {
	if offset >= len(lines) {
		return 0, nil, nil, &SectionFormatError{Line: offset, Msg: "missing section descriptor"}
	}
	desc := lines[offset]
	fields := strings.Fields(desc)
	if len(fields) == 0 {
		return 0, nil, nil, &SectionFormatError{Line: offset, Msg: "empty section descriptor"}
	}
	count, aerr := strconv.Atoi(fields[0])
	if aerr != nil || count < 0 {
		return 0, nil, nil, &SectionFormatError{Line: offset, Msg: fmt.Sprintf("bad element count in descriptor %q", strings.TrimSpace(desc))}
	}

	if strings.Contains(strings.ToLower(desc), "comment") {
		if offset+1+count > len(lines) {
			return 0, nil, nil, &SectionFormatError{Line: offset, Msg: "comment section extends past end of file"}
		}
		return count, nil, lines[offset+1 : offset+1+count], nil
	}

	spec, ferr := parseFormatSpec(desc)
	if ferr != nil {
		return 0, nil, nil, &SectionFormatError{Line: offset, Msg: ferr.Error()}
	}
	rows = (count + spec.columns - 1) / spec.columns
	if offset+1+rows > len(lines) {
		return 0, nil, nil, &SectionFormatError{Line: offset, Msg: "numeric section extends past end of file"}
	}

	values = make([]float64, 0, count)
	for r := 0; r < rows; r++ {
		lineNo := offset + 1 + r
		line := lines[lineNo]
		for c := 0; c < spec.columns && len(values) < count; c++ {
			start := c * spec.fieldWidth
			end := start + spec.fieldWidth
			if end > len(line) {
				end = len(line)
			}
			if start >= len(line) {
				return 0, nil, nil, &SectionFormatError{Line: lineNo, Msg: fmt.Sprintf("row has %d columns of width %d, want %d", c, spec.fieldWidth, spec.columns)}
			}
			field := strings.TrimSpace(line[start:end])
			v, perr := strconv.ParseFloat(field, 64)
			if perr != nil {
				return 0, nil, nil, &SectionFormatError{Line: lineNo, Msg: fmt.Sprintf("field %d %q is not numeric", c+1, field)}
			}
			values = append(values, v)
		}
	}
	if len(values) != count {
		return 0, nil, nil, &SectionFormatError{Line: offset, Msg: fmt.Sprintf("descriptor declares %d values, rows hold %d", count, len(values))}
	}
	return rows, values, nil, nil
}

// toInt32 narrows a numeric section payload to the integer kind declared
// by the caller.
func toInt32(values []float64) []int32 {
	out := make([]int32, len(values))
	for i, v := range values {
		out[i] = int32(v)
	}
	return out
}
