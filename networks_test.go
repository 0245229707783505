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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadNetworkTable(t *testing.T) {
	csv := "Code,Network Name,Operator\n" +
		"nz,New Zealand National Seismograph Network,GNS Science\n" +
		"CE,California Strong Motion Instrumentation Program,California Geological Survey\n"
	table, err := loadNetworkTable(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, table, 2)
	assert.Equal(t, "New Zealand National Seismograph Network, GNS Science", table["NZ"])
	assert.Equal(t, "California Strong Motion Instrumentation Program, California Geological Survey", table["CE"])
}

func TestLoadNetworkTableShortRow(t *testing.T) {
	csv := "Code,Network Name,Operator\nNZ,missing operator\n"
	_, err := loadNetworkTable(strings.NewReader(csv))
	require.Error(t, err)
}

func TestBundledNetworkTable(t *testing.T) {
	table := fdsnNetworks()
	require.NotEmpty(t, table)
	assert.Equal(t, "New Zealand National Seismograph Network, GNS Science", table["NZ"])
	assert.Contains(t, table, "CE")
	assert.Contains(t, table, "NP")
	// Loaded once: both calls see the same immutable map.
	assert.Equal(t, len(table), len(fdsnNetworks()))
}
