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
	"math"
	"strings"
)

// textHeaderRows is the fixed number of text header lines per channel block.
// The last of them doubles as the integer-section descriptor.
const textHeaderRows = 14

// defaultSentinel is assumed when a block does not declare its own
// "unknown value" marker.
const defaultSentinel = -999

// Text header layout. Lines are 0-based; spans are 0-based half-open
// column intervals, end < 0 meaning "to end of line".
const (
	lineAgency     = 4  // network code, station code, station name
	lineInstrument = 6  // free-text sensor description
	lineProcess    = 10 // processing date
	lineSentinel   = 12 // block-local unknown-value marker
)

var (
	colNetworkCode = span{25, 27}
	colStationCode = span{28, 34}
	colStationName = span{40, -1}
	colInstrument  = span{57, -1}
	colProcessTime = span{10, 40}
	colSentinel    = span{64, 71}
)

// span is a fixed column range within a text header line.
type span struct {
	start, end int
}

// slice extracts the span from line, tolerating lines shorter than the
// declared layout, and trims surrounding blanks.
func (s span) slice(line string) string {
	start, end := s.start, s.end
	if end < 0 || end > len(line) {
		end = len(line)
	}
	if start > end {
		start = end
	}
	return strings.TrimSpace(line[start:end])
}

// Integer header slots (0-based indices into the integer header array).
const (
	intProcessLevel   = 0
	intUnitsCode      = 1
	intPhysicalParam  = 2
	intNetworkNumber  = 10
	intStructureType  = 18
	intYear           = 39
	intMonth          = 41
	intDay            = 42
	intHour           = 43
	intMinute         = 44
	intSensorType     = 51
	intSerialNumber   = 52
	intAzimuth        = 53
	intLocation       = 55
	intLowFilterType  = 60
	intHighFilterType = 61
	intSampleCount    = 69
	intRecordFlag     = 75
)

// Real header slots (0-based indices into the float header array).
const (
	fltLatitude          = 0
	fltLongitude         = 1
	fltElevation         = 2
	fltV30               = 3
	fltLSB               = 21
	fltCornerFrequency   = 25
	fltSecond            = 29
	fltDelta             = 33
	fltDuration          = 34
	fltSensorFrequency   = 39
	fltSensorDamping     = 40
	fltSensorSensitivity = 41
	fltLowFilterCorner   = 53
	fltLowFilterDecay    = 54
	fltHighFilterCorner  = 56
	fltHighFilterDecay   = 57
	fltPeakValue         = 63
	fltPeakTime          = 64
	fltScalingFactor     = 87
)

// Minimum header array lengths implied by the slots above.
const (
	minIntHeader = intRecordFlag + 1
	minFltHeader = fltScalingFactor + 1
)

// orNaN resolves a sentinel-laden raw value: the value itself unless it
// equals the block's unknown marker, else NaN.
func orNaN(v float64, sentinel int) float64 {
	if v == float64(sentinel) {
		return math.NaN()
	}
	return v
}

// networkEntry is one row of the built-in COSMOS agency table.
type networkEntry struct {
	code  string // FDSN network code, may be empty
	name  string // full organization name
	short string // alternate abbreviation, used when code is empty
}

var cosmosNetworks = map[int]networkEntry{
	1:   {"", "U.S. Coast and Geodetic Survey", "C&GS"},
	2:   {"NP", "U.S. Geological Survey", "USGS"},
	3:   {"RE", "U.S. Bureau of Reclamation", "USBR"},
	4:   {"", "U.S. Army Corps of Engineers", "ACOE"},
	5:   {"CE", "California Geological Survey", "CGS"},
	6:   {"CI", "California Institute of Technology", "CIT"},
	7:   {"BK", "UC Berkeley", "UCB"},
	100: {"TW", "Taiwan Weather Bureau", "CWB"},
	200: {"KD", "Kandilli Observatory", "KOER"},
}

// orientationEntry is one row of the COSMOS orientation-code table.
type orientationEntry struct {
	description string
	short       string
}

var cosmosOrientations = map[int]orientationEntry{
	400:  {"Up", "Up"},
	401:  {"Down", "Down"},
	402:  {"Vertical, sense not indicated", "Vert"},
	500:  {"Radial, inward", "Radl"},
	501:  {"Transverse, 90 deg CW from radial", "Tran"},
	600:  {"Longitudinal (relative to structure)", "Long"},
	601:  {"Tangential (relative to structure)", "Tang"},
	700:  {"H1 (horiz. sensor, azimuth unknown)", "H1"},
	701:  {"H2 (horiz. sensor, azimuth unknown)", "H2"},
	2000: {"Other (described in comments)", "Othr"},
}

var filterTypes = map[int]string{
	0: "None",
	1: "Rectangular",
	2: "Cosine bell",
	3: "Ormsby",
	4: "Butterworth single direction",
	5: "Butterworth bi-directional",
	6: "Bessel",
}

// physicalUnit is one row of the physical-units table. The factor converts
// to cm/sec/sec where such a conversion is meaningful, NaN otherwise.
type physicalUnit struct {
	name   string
	factor float64
}

var physicalUnits = map[int]physicalUnit{
	1:  {"sec", math.NaN()},
	2:  {"g", 980.665},
	3:  {"secs & g", math.NaN()},
	4:  {"cm/sec/sec", 1.0},
	5:  {"cm/sec", 1.0},
	6:  {"cm", 1.0},
	7:  {"in/sec/sec", 2.54},
	8:  {"in/sec", 2.54},
	9:  {"in", 2.54},
	10: {"gal", 1.0},
	11: {"mg", 0.980665},
	12: {"micro g", math.NaN()},
	22: {"mvolts", math.NaN()},
	23: {"deg/sec/sec", math.NaN()},
	24: {"deg/sec", math.NaN()},
	25: {"deg", math.NaN()},
	50: {"counts", math.NaN()},
	51: {"volts", math.NaN()},
	60: {"psi", math.NaN()},
	80: {"micro strain", math.NaN()},
}

var unitTypes = map[int]string{
	1:  "acc",
	2:  "vel",
	3:  "disp",
	4:  "Relative Displacement",
	10: "Angular Acceleration",
	11: "Angular Velocity",
	12: "Angular Displacement",
	20: "Absolute Pressure",
	21: "Relative Pressure (gage)",
	30: "Volumetric Strain",
	31: "Linear Strain",
}

var sensorTypes = map[int]string{
	1:    "Optical-mechanical accelerometer",
	2:    "Kinemetrics FBA-1 accelerometer",
	3:    "Kinemetrics FBA-3 accelerometer",
	4:    "Kinemetrics FBA-11 accelerometer",
	5:    "Kinemetrics FBA-13 accelerometer",
	6:    "Kinemetrics FBA-13DH accelerometer",
	7:    "Kinemetrics FBA-23 accelerometer",
	8:    "Kinemetrics FBA-23DH accelerometer",
	20:   "Kinemetrics Episensor accelerometer",
	21:   "Kinemetrics Episensor ES-U accelerometer",
	50:   "Sprengnether FBX-23 accelerometer",
	51:   "Sprengnether FBX-26 accelerometer",
	100:  "Terratech SSA 120 accelerometer",
	101:  "Terratech SSA 220 accelerometer",
	102:  "Terratech SSA 320 accelerometer",
	150:  "Wilcoxson 731A accelerometer",
	200:  "Guralp CMG-5 accelerometer",
	900:  "Other accelerometer",
	1001: "Kinemetrics SS-1 Ranger velocity sensor",
	1050: "Sprengnether S-3000 velocity sensor",
	1201: "Guralp CMG-1 velocity sensor",
	1202: "Guralp CMG-3T velocity sensor",
	1203: "Guralp CMG-3ESP velocity sensor",
	1204: "Guralp CMG-40 velocity sensor",
	1250: "Strecheisen STS-1 velocity sensor",
	1251: "Strecheisen STS-2 velocity sensor",
	1300: "Mark Products L4 velocity sensor",
	1301: "Mark Products L22D velocity sensor",
	1900: "Other velocity sensor",
	3000: "Other pressure series",
	3500: "Other Dilatometer series",
	4000: "Other Relative displacement series",
	4500: "Other Rotational series",
	9000: "Other Other series",
}

var buildingTypes = map[int]string{
	1:  "Small fiberglass shelter",
	2:  "Small prefabricated metal bldg",
	3:  "Sensors buried/set in ground",
	4:  "Reference station",
	5:  "Base of building",
	10: "Building",
	11: "Bridge",
	12: "Dam",
	20: "Other structure",
	50: "Geotechnical array",
	51: "Other array",
}
