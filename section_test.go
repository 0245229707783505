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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormatSpec(t *testing.T) {
	spec, err := parseFormatSpec(" 100 Integer-header values follow on 10 lines, Format= (10I8)")
	require.NoError(t, err)
	assert.Equal(t, formatSpec{columns: 10, fieldWidth: 8}, spec)

	spec, err = parseFormatSpec("16380 acceleration pts, approx 164 secs, units=cm/sec/sec(4), Format=(8F10.5)")
	require.NoError(t, err)
	assert.Equal(t, formatSpec{columns: 8, fieldWidth: 10}, spec)

	spec, err = parseFormatSpec(" 100 Real-header values follow on 20 lines , Format = (5F10.4)")
	require.NoError(t, err)
	assert.Equal(t, formatSpec{columns: 5, fieldWidth: 10}, spec)

	_, err = parseFormatSpec(" 100 values with no packing code")
	assert.Error(t, err)

	_, err = parseFormatSpec(" 100 values, Format=()")
	assert.Error(t, err)
}

func TestReadSectionNumeric(t *testing.T) {
	lines := []string{
		"  12 Integer-header values follow on 3 lines, Format= (5I8)",
		"       1       2       3       4       5",
		"       6       7       8       9      10",
		"      11      12",
	}
	rows, values, comments, err := readSection(lines, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, rows)
	assert.Nil(t, comments)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, values)
}

func TestReadSectionIgnoresTrailingPadding(t *testing.T) {
	lines := []string{
		"   7 values follow, Format=(4I8)",
		"       1       2       3       4",
		"       5       6       7    -999",
	}
	rows, values, _, err := readSection(lines, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7}, values)
}

func TestReadSectionComments(t *testing.T) {
	lines := []string{
		"   2 Comment line(s) follow, each starting with a \"|\":",
		"| RECORD PROCESSED BY CGS",
		"| Sensor reoriented during maintenance",
	}
	rows, values, comments, err := readSection(lines, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	assert.Nil(t, values)
	assert.Equal(t, lines[1:], comments)
}

func TestReadSectionBadDescriptor(t *testing.T) {
	var sfe *SectionFormatError

	_, _, _, err := readSection([]string{"twelve values, Format=(5I8)"}, 0)
	require.ErrorAs(t, err, &sfe)

	_, _, _, err = readSection([]string{""}, 0)
	require.ErrorAs(t, err, &sfe)

	_, _, _, err = readSection([]string{"  12 values but nothing tells how they pack"}, 0)
	require.ErrorAs(t, err, &sfe)
}

func TestReadSectionShortRow(t *testing.T) {
	lines := []string{
		"   4 values follow, Format=(4I8)",
		"       1       2",
	}
	var sfe *SectionFormatError
	_, _, _, err := readSection(lines, 0)
	require.ErrorAs(t, err, &sfe)
	assert.Equal(t, 1, sfe.Line)
}

func TestReadSectionNonNumericField(t *testing.T) {
	lines := []string{
		"   4 values follow, Format=(4I8)",
		"       1     x.y       3       4",
	}
	var sfe *SectionFormatError
	_, _, _, err := readSection(lines, 0)
	require.ErrorAs(t, err, &sfe)
}

func TestReadSectionTruncatedFile(t *testing.T) {
	lines := []string{
		"  12 values follow, Format=(5I8)",
		"       1       2       3       4       5",
	}
	var sfe *SectionFormatError
	_, _, _, err := readSection(lines, 0)
	require.ErrorAs(t, err, &sfe)

	_, _, _, err = readSection(lines, 5)
	require.ErrorAs(t, err, &sfe)
}
