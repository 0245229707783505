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

func TestChannelName(t *testing.T) {
	assert.Equal(t, "HNN", channelName(100, true, false, true))
	assert.Equal(t, "HNE", channelName(100, true, false, false))
	assert.Equal(t, "HNZ", channelName(100, true, true, false))
	assert.Equal(t, "BNZ", channelName(40, true, true, false))
	assert.Equal(t, "HNN", channelName(80, true, false, true))
	assert.Equal(t, "HHN", channelName(200, false, false, true))
}

func TestResolveChannelAzimuthBuckets(t *testing.T) {
	cases := []struct {
		angle float64
		want  string
	}{
		{0, "HNN"}, {44, "HNN"}, {45, "HNE"}, {90, "HNE"},
		{135, "HNE"}, {136, "HNN"}, {180, "HNN"}, {224, "HNN"},
		{225, "HNE"}, {270, "HNE"}, {315, "HNE"}, {316, "HNN"},
		{360, "HNN"},
	}
	for _, tc := range cases {
		got, err := resolveChannel(tc.angle, 100)
		require.NoError(t, err, "angle %g", tc.angle)
		assert.Equal(t, tc.want, got, "angle %g", tc.angle)
	}
}

func TestResolveChannelOrientationCodes(t *testing.T) {
	for _, code := range []float64{400, 401, 402} {
		got, err := resolveChannel(code, 100)
		require.NoError(t, err)
		assert.Equal(t, "HNZ", got, "code %g", code)
	}
	// Vertical naming consumes the sampling rate.
	got, err := resolveChannel(400, 40)
	require.NoError(t, err)
	assert.Equal(t, "BNZ", got)

	cases := map[float64]string{
		500: "RADL", 501: "TRAN", 600: "LONG", 601: "TANG",
		700: "H1", 701: "H2", 2000: "OTHR",
	}
	for code, want := range cases {
		got, err := resolveChannel(code, 100)
		require.NoError(t, err)
		assert.Equal(t, want, got, "code %g", code)
	}
}

func TestResolveChannelUnknown(t *testing.T) {
	var terr *TimeReconstructionError
	_, err := resolveChannel(399, 100)
	require.ErrorAs(t, err, &terr)
	_, err = resolveChannel(-999, 100)
	require.ErrorAs(t, err, &terr)
	_, err = resolveChannel(400.5, 100)
	require.ErrorAs(t, err, &terr)
}
