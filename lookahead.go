// Copyright 2026, Shulhan <ms@kilabit.info>. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package spaceup

import "strings"

// lines is the content of document, one element per physical line, with
// trailing spaces removed.
type lines []string

//
// nextIndent return the indentation of the first line after x that is not
// empty and not a comment.
// It will return -1 if no such line exist.
//
func (ls lines) nextIndent(x int) int {
	for x++; x < len(ls); x++ {
		indent := indentWidth(ls[x])
		if indent != noIndent {
			return indent
		}
	}
	return -1
}

//
// hasBlankBeforeNext return true if there is a separator between line x and
// the next line that has content.
//
// Only a comment line counts as separator.
// Empty lines between two lines with the same indentation do not break
// them into heading and body.
//
func (ls lines) hasBlankBeforeNext(x int) (found bool) {
	for x++; x < len(ls); x++ {
		if indentWidth(ls[x]) != noIndent {
			break
		}
		if len(strings.TrimSpace(ls[x])) > 0 {
			found = true
		}
	}
	return found
}
