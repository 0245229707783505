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
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"
)

// mapHeader translates the raw section payloads of one channel block into
// channel metadata. Raw values equal to the block's sentinel resolve to
// NaN (numeric) or empty (text); only a missing orientation or an invalid
// start time is fatal.
func mapHeader(intData []int32, fltData []float64, headerLines []string, comments []string, sentinel int, location string) (ChannelMetadata, error) {
	meta := ChannelMetadata{SourceFormat: "cosmos"}
	if len(headerLines) < textHeaderRows {
		return meta, &SectionFormatError{Line: -1, Msg: fmt.Sprintf("text header has %d lines, want %d", len(headerLines), textHeaderRows)}
	}
	if len(intData) < minIntHeader || len(fltData) < minFltHeader {
		return meta, &SectionFormatError{Line: -1, Msg: fmt.Sprintf("header arrays too short: %d ints, %d floats", len(intData), len(fltData))}
	}

	// Network: built-in agency table first, then the two-letter code from
	// the text header against the bundled registry, then the placeholder.
	if entry, ok := cosmosNetworks[int(intData[intNetworkNumber])]; ok {
		meta.Network = entry.code
		if meta.Network == "" {
			meta.Network = entry.short
		}
		meta.Source = entry.name
	} else {
		code := strings.ToUpper(colNetworkCode.slice(headerLines[lineAgency]))
		if source, ok := fdsnNetworks()[code]; ok {
			meta.Network = code
			meta.Source = source
		} else {
			slog.Debug("cosmos: network code not in any table", "number", intData[intNetworkNumber], "code", code)
			meta.Network = "ZZ"
			meta.Source = ""
		}
	}
	meta.Station = colStationCode.slice(headerLines[lineAgency])
	meta.StationName = colStationName.slice(headerLines[lineAgency])

	// Sample interval before orientation: vertical channel names depend on
	// the sampling rate.
	meta.Delta = orNaN(fltData[fltDelta], sentinel)
	meta.SamplingRate = math.NaN()
	if !math.IsNaN(meta.Delta) {
		meta.SamplingRate = 1 / meta.Delta
	}

	if int(intData[intAzimuth]) == sentinel {
		return meta, &TimeReconstructionError{Msg: "not enough information to distinguish horizontal from vertical channels"}
	}
	meta.HorizontalOrientation = float64(intData[intAzimuth])
	channel, err := resolveChannel(meta.HorizontalOrientation, meta.SamplingRate)
	if err != nil {
		return meta, err
	}
	meta.Channel = channel

	if location == "" {
		if code := int(intData[intLocation]); code == sentinel {
			location = "--"
		} else {
			location = strconv.Itoa(code)
			for len(location) < 2 {
				location = "0" + location
			}
		}
	}
	meta.Location = location

	meta.StartTime, err = reconstructStartTime(intData, fltData, sentinel)
	if err != nil {
		return meta, err
	}

	meta.Duration = orNaN(fltData[fltDuration], sentinel)
	meta.Npts = int(intData[intSampleCount])

	meta.Coordinates = Coordinates{
		Latitude:  orNaN(fltData[fltLatitude], sentinel),
		Longitude: orNaN(fltData[fltLongitude], sentinel),
		Elevation: orNaN(fltData[fltElevation], sentinel),
	}

	meta.InstrumentPeriod = 1.0 / orNaN(fltData[fltSensorFrequency], sentinel)
	meta.InstrumentDamping = orNaN(fltData[fltSensorDamping], sentinel)
	meta.ProcessTime = parseProcessTime(colProcessTime.slice(headerLines[lineProcess]))

	switch intData[intProcessLevel] {
	case 0:
		meta.ProcessLevel = ProcessLevelV0
	case 2:
		meta.ProcessLevel = ProcessLevelV2
	case 3:
		meta.ProcessLevel = ProcessLevelV3
	default:
		meta.ProcessLevel = ProcessLevelV1
	}

	if serial := int(intData[intSerialNumber]); serial != sentinel {
		meta.SensorSerialNumber = strconv.Itoa(serial)
	}

	// Sensor code table, with the free-text description as fallback.
	if name, ok := sensorTypes[int(intData[intSensorType])]; ok && int(intData[intSensorType]) != sentinel {
		meta.Instrument = name
	} else {
		meta.Instrument = colInstrument.slice(headerLines[lineInstrument])
	}

	if name, ok := buildingTypes[int(intData[intStructureType])]; ok && int(intData[intStructureType]) != sentinel {
		meta.StructureType = name
	}

	meta.CornerFrequency = orNaN(fltData[fltCornerFrequency], sentinel)

	unitsCode := int(intData[intUnitsCode])
	physParam := int(intData[intPhysicalParam])
	if name, ok := unitTypes[unitsCode]; ok && unitsCode != sentinel {
		meta.Units = name
	} else {
		// Infer the recorded quantity from the physical-parameter code.
		switch physParam {
		case 2, 4, 7, 10, 11, 12, 23:
			meta.Units = "acc"
		case 5, 8, 24:
			meta.Units = "vel"
		case 6, 9, 25:
			meta.Units = "disp"
		default:
			slog.Debug("cosmos: units not derivable", "units", unitsCode, "physical", physParam)
		}
	}

	meta.Comments = strings.Join(comments, ", ")
	meta.FormatSpecific = mapFormatSpecific(intData, fltData, physParam, sentinel)
	return meta, nil
}

func mapFormatSpecific(intData []int32, fltData []float64, physParam, sentinel int) FormatSpecific {
	fs := FormatSpecific{
		V30:                 orNaN(fltData[fltV30], sentinel),
		LeastSignificantBit: orNaN(fltData[fltLSB], sentinel),
		LowFilterType:       filterTypes[int(intData[intLowFilterType])],
		LowFilterCorner:     orNaN(fltData[fltLowFilterCorner], sentinel),
		LowFilterDecay:      orNaN(fltData[fltLowFilterDecay], sentinel),
		HighFilterType:      filterTypes[int(intData[intHighFilterType])],
		HighFilterCorner:    orNaN(fltData[fltHighFilterCorner], sentinel),
		HighFilterDecay:     orNaN(fltData[fltHighFilterDecay], sentinel),
		Maximum:             orNaN(fltData[fltPeakValue], sentinel),
		MaximumTime:         orNaN(fltData[fltPeakTime], sentinel),
		ScalingFactor:       orNaN(fltData[fltScalingFactor], sentinel),
		SensorSensitivity:   orNaN(fltData[fltSensorSensitivity], sentinel),
	}

	switch {
	case physParam == sentinel:
		fs.PhysicalUnits = ""
	default:
		if unit, ok := physicalUnits[physParam]; ok {
			fs.PhysicalUnits = unit.name
		} else {
			fs.PhysicalUnits = strconv.Itoa(physParam)
		}
	}

	fs.StationCode = int(intData[intStructureType])
	if fs.StationCode == sentinel {
		fs.StationCode = -1
	}

	switch intData[intRecordFlag] {
	case 0:
		fs.RecordFlag = "No problem"
	case 1:
		fs.RecordFlag = "Fixed"
	case 2:
		fs.RecordFlag = "Unfixed problem"
	}
	return fs
}

// reconstructStartTime assembles the record start from the separate
// calendar fields. A sentinel seconds field degrades to minute resolution;
// any other sentinel or an invalid combination is fatal.
func reconstructStartTime(intData []int32, fltData []float64, sentinel int) (time.Time, error) {
	year := int(intData[intYear])
	month := int(intData[intMonth])
	day := int(intData[intDay])
	hour := int(intData[intHour])
	minute := int(intData[intMinute])
	for _, v := range []int{year, month, day, hour, minute} {
		if v == sentinel {
			return time.Time{}, &TimeReconstructionError{Msg: "inadequate start time information"}
		}
	}

	var sec int
	var nsec int
	if seconds := fltData[fltSecond]; seconds != float64(sentinel) {
		sec = int(seconds)
		nsec = int((seconds-float64(sec))*1e6) * 1000
	}
	t := time.Date(year, time.Month(month), day, hour, minute, sec, nsec, time.UTC)
	// time.Date normalizes out-of-range components (month 13 becomes
	// January); a round trip detects any adjustment.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day || t.Hour() != hour || t.Minute() != minute {
		return time.Time{}, &TimeReconstructionError{Msg: "inadequate start time information"}
	}
	return t, nil
}

// parseProcessTime recovers the processing date stamped into the text
// header. The field is free-form; archives use either "-" or "/" as the
// date delimiter and ":" within the time of day. Anything unparseable
// leaves the zero time; this never fails the parse.
func parseProcessTime(s string) time.Time {
	var delim string
	switch {
	case strings.Contains(s, "-"):
		delim = "-"
	case strings.Contains(s, "/"):
		delim = "/"
	default:
		return time.Time{}
	}
	date := strings.Split(s, delim)
	clock := strings.Split(s, ":")
	if len(date) < 3 || len(clock) < 3 {
		return time.Time{}
	}
	month, err1 := tailInt(date[0], 2)
	day, err2 := strconv.Atoi(strings.TrimSpace(date[1]))
	year, err3 := headInt(date[2], 4)
	hour, err4 := tailInt(clock[0], 2)
	minute, err5 := strconv.Atoi(strings.TrimSpace(clock[1]))
	seconds, err6 := headFloat(clock[2], 2)
	for _, err := range []error{err1, err2, err3, err4, err5, err6} {
		if err != nil {
			slog.Debug("cosmos: unparseable process time", "field", s)
			return time.Time{}
		}
	}
	sec := int(seconds)
	nsec := int((seconds-float64(sec))*1e6) * 1000
	t := time.Date(year, time.Month(month), day, hour, minute, sec, nsec, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day || t.Hour() != hour || t.Minute() != minute {
		slog.Debug("cosmos: implausible process time", "field", s)
		return time.Time{}
	}
	return t
}

// tailInt parses the last n characters of s as an integer.
func tailInt(s string, n int) (int, error) {
	if len(s) > n {
		s = s[len(s)-n:]
	}
	return strconv.Atoi(strings.TrimSpace(s))
}

// headInt parses the first n characters of s as an integer.
func headInt(s string, n int) (int, error) {
	if len(s) > n {
		s = s[:n]
	}
	return strconv.Atoi(strings.TrimSpace(s))
}

// headFloat parses the first n characters of s as a float.
func headFloat(s string, n int) (float64, error) {
	if len(s) > n {
		s = s[:n]
	}
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
