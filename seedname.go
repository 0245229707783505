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
	"strings"
)

// channelName builds a SEED-convention channel code from the sampling rate
// and sensor axis: band code (H for 80 sps and above, B below), instrument
// code (N for accelerometers, H otherwise), orientation code (Z/N/E).
func channelName(sampleRate float64, isAcceleration, isVertical, isNorth bool) string {
	band := "B"
	if sampleRate >= 80 {
		band = "H"
	}
	code := "H"
	if isAcceleration {
		code = "N"
	}
	orientation := "Z"
	if !isVertical {
		orientation = "E"
		if isNorth {
			orientation = "N"
		}
	}
	return band + code + orientation
}

// resolveChannel maps a COSMOS orientation value to a channel code. The
// value is either an entry of the orientation-code table or a plain azimuth
// in degrees clockwise from north. Vertical codes and azimuths derive a
// SEED name from the sampling rate, so the rate must be resolved first.
func resolveChannel(angle, sampleRate float64) (string, error) {
	if code := int(angle); float64(code) == angle {
		if o, ok := cosmosOrientations[code]; ok {
			ch := strings.ToUpper(o.short)
			switch ch {
			case "UP", "DOWN", "VERT":
				ch = channelName(sampleRate, true, true, false)
			}
			return ch, nil
		}
	}
	if angle >= 0 && angle <= 360 {
		// Within 45 degrees of north or south counts as the north channel.
		north := angle > 315 || angle < 45 || (angle > 135 && angle < 225)
		return channelName(sampleRate, true, false, north), nil
	}
	return "", &TimeReconstructionError{Msg: fmt.Sprintf("orientation %g is neither an azimuth nor a known orientation code", angle)}
}
