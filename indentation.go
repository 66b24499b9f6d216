// Copyright 2026, Shulhan <ms@kilabit.info>. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package spaceup

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IndentUnit is the number of spaces for one level of indentation.
const IndentUnit = 4

// List of reasons for IndentationError.
const (
	ReasonTab      = "Tabs are not allowed for indentation."
	ReasonNotUnits = "Indentation must be a multiple of 4 spaces."
)

//
// IndentationError define an error on the leading white spaces of a line.
//
type IndentationError struct {
	Line   int // Line number, start from 1.
	Reason string
}

func (ierr *IndentationError) Error() string {
	return fmt.Sprintf("Line %d: %s", ierr.Line, ierr.Reason)
}

//
// ValidateIndentation check that every non empty line is indented using
// multiple of IndentUnit spaces, without tab.
// It return the first *IndentationError found, or nil.
//
// Parse does not require valid indentation; this is a stricter check for
// tools that want to keep the source consistent.
//
func ValidateIndentation(content string) error {
	for x, line := range splitLines(content) {
		stripped := strings.TrimLeftFunc(line, unicode.IsSpace)
		if len(stripped) == 0 {
			continue
		}

		spaces := line[:len(line)-len(stripped)]
		if strings.ContainsRune(spaces, '\t') {
			return &IndentationError{Line: x + 1, Reason: ReasonTab}
		}
		if utf8.RuneCountInString(spaces)%IndentUnit != 0 {
			return &IndentationError{Line: x + 1, Reason: ReasonNotUnits}
		}
	}
	return nil
}
