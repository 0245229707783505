// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 The OpenSMA Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package cosmos

import "time"

// ProcessLevel is the degree of post-processing already applied to the
// recorded values, from raw counts (V0) through derived products (V3).
type ProcessLevel string

const (
	ProcessLevelV0 ProcessLevel = "V0" // raw recorder counts
	ProcessLevelV1 ProcessLevel = "V1" // uncorrected physical units
	ProcessLevelV2 ProcessLevel = "V2" // corrected acceleration
	ProcessLevelV3 ProcessLevel = "V3" // derived products
)

// Coordinates is the geographic position of the recording station.
// Unreported components are NaN.
type Coordinates struct {
	Latitude  float64 // Decimal degrees, north positive
	Longitude float64 // Decimal degrees, east positive
	Elevation float64 // Meters above sea level
}

// FormatSpecific holds fields unique to the COSMOS instrumentation
// conventions, as opposed to metadata common across seismic formats.
// Unreported numeric fields are NaN; unreported text fields are empty.
type FormatSpecific struct {
	PhysicalUnits       string  // Units the samples are expressed in (e.g. cm/sec/sec)
	V30                 float64 // Site geology V30 (km/s)
	LeastSignificantBit float64 // Recorder LSB (uV/count)
	LowFilterType       string  // Filter used for low-frequency processing
	LowFilterCorner     float64 // Low-frequency filter corner (Hz)
	LowFilterDecay      float64 // Low-frequency filter decay (dB/octave)
	HighFilterType      string  // Filter used for high-frequency processing
	HighFilterCorner    float64 // High-frequency filter corner (Hz)
	HighFilterDecay     float64 // High-frequency filter decay (dB/octave)
	Maximum             float64 // Peak value of the series
	MaximumTime         float64 // Time of the peak (seconds from record start)
	StationCode         int     // Station/structure type code, -1 if unreported
	RecordFlag          string  // "No problem", "Fixed" or "Unfixed problem"
	ScalingFactor       float64 // Scaling applied when converting to cm/sec/sec
	SensorSensitivity   float64 // Sensor sensitivity (volts/g)
}

// ChannelMetadata describes one recorded channel. It is immutable once
// built; unreported numeric fields are NaN and text fields are empty.
type ChannelMetadata struct {
	Network  string // FDSN network code, "ZZ" if it cannot be determined
	Station  string // Station code
	Channel  string // SEED-style channel code (e.g. HNN)
	Location string // Two-character location code, "--" if unreported

	StartTime    time.Time // Record start, second resolution or better
	Duration     float64   // Record length (seconds)
	SamplingRate float64   // Samples per second
	Delta        float64   // Sample interval (seconds)
	Npts         int       // Declared sample count

	Coordinates           Coordinates
	HorizontalOrientation float64 // Sensor azimuth, degrees clockwise from north
	InstrumentPeriod      float64 // Natural period of the sensor (seconds)
	InstrumentDamping     float64 // Fraction of critical damping

	ProcessTime  time.Time // Reported date of processing, zero if unparseable
	ProcessLevel ProcessLevel

	SensorSerialNumber string
	Instrument         string // Sensor description
	StructureType      string // Structure the sensor is mounted on
	CornerFrequency    float64
	Units              string // Quantity recorded (acc, vel, disp, ...)
	Source             string // Owning network/organization description
	SourceFormat       string // Always "cosmos"
	StationName        string // Long-form station description
	Comments           string // Joined processing comments

	FormatSpecific FormatSpecific
}

// Provenance records a processing step already applied to the data before
// it reached this reader.
type Provenance struct {
	Operation   string
	InputUnits  string
	OutputUnits string
}

// ChannelRecord is one channel's metadata and sample amplitudes.
type ChannelRecord struct {
	Metadata   ChannelMetadata
	Data       []float64
	Provenance []Provenance
}

// Options controls parsing.
type Options struct {
	// ValidStationTypes keeps only channels whose station/structure type
	// code is in the list. Nil keeps every channel.
	ValidStationTypes []int
	// Location overrides the location code parsed from each block.
	Location string
}
