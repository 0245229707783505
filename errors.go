// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 The OpenSMA Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package cosmos

import "fmt"

// SectionFormatError reports a section descriptor or data row that cannot
// be decoded. It is fatal for the whole file.
type SectionFormatError struct {
	Line int // 0-based line index of the offending line, -1 if not line-bound
	Msg  string
}

func (e *SectionFormatError) Error() string {
	if e.Line < 0 {
		return "bad section format: " + e.Msg
	}
	return fmt.Sprintf("bad section format at line %d: %s", e.Line+1, e.Msg)
}

// TimeReconstructionError reports calendar fields that do not form a valid
// timestamp, or an orientation field that cannot be resolved. It is fatal
// for the whole file.
type TimeReconstructionError struct {
	Msg string
}

func (e *TimeReconstructionError) Error() string {
	return e.Msg
}
