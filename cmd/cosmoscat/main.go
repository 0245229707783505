// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 The OpenSMA Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// cosmoscat prints a per-channel summary of COSMOS strong-motion files.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/OpenSMA/cosmos"
)

type stationTypes []int

func (s *stationTypes) String() string {
	return fmt.Sprint(*s)
}

func (s *stationTypes) Set(vs string) error {
	for _, v := range strings.Split(vs, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("bad station type %q", v)
		}
		*s = append(*s, n)
	}
	return nil
}

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

func main() {
	var types stationTypes
	flag.Var(&types, "t", "keep only these station type codes (comma separated)")
	location := flag.String("l", "", "location code override")
	asJSON := flag.Bool("j", false, "dump channel metadata as json")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatalln("usage: cosmoscat [-t types] [-l location] [-j] file...")
	}

	opts := cosmos.Options{ValidStationTypes: types, Location: *location}
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	for _, path := range flag.Args() {
		if !cosmos.IsCosmos(path) {
			log.Printf("%s: not a cosmos file, skipping", path)
			continue
		}
		records, err := cosmos.ParseFile(path, &opts)
		if err != nil {
			log.Fatalln(err)
		}
		for _, r := range records {
			if *asJSON {
				if err := enc.Encode(r.Metadata); err != nil {
					log.Fatalln(err)
				}
				continue
			}
			m := r.Metadata
			fmt.Fprintf(w, "%s\t%s.%s.%s.%s\t%s\t%s\t%g sps\t%d pts\t%s\n",
				path, m.Network, m.Station, m.Channel, m.Location,
				m.ProcessLevel, m.StartTime.Format("2006-01-02T15:04:05"),
				m.SamplingRate, len(r.Data), m.FormatSpecific.PhysicalUnits)
		}
	}
	if err := w.Flush(); err != nil {
		log.Fatalln(err)
	}
}
