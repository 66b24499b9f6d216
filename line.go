// Copyright 2026, Shulhan <ms@kilabit.info>. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package spaceup

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const commentPrefix = "//"

// noIndent is the width of line that does not take part in indentation.
const noIndent = -1

//
// indentWidth return the number of leading white space characters in line.
// It will return noIndent if the line is empty or started with "//" after
// the leading spaces.
// The width is not normalized; a tab count as one character.
//
func indentWidth(line string) int {
	stripped := strings.TrimLeftFunc(line, unicode.IsSpace)
	if len(stripped) == 0 || strings.HasPrefix(stripped, commentPrefix) {
		return noIndent
	}
	return utf8.RuneCountInString(line[:len(line)-len(stripped)])
}

// isCommentLine return true if the first non space characters are "//".
func isCommentLine(line string) bool {
	stripped := strings.TrimLeftFunc(line, unicode.IsSpace)
	return strings.HasPrefix(stripped, commentPrefix)
}

// commentText return the text after "//" on a comment line.
func commentText(line string) string {
	stripped := strings.TrimLeftFunc(line, unicode.IsSpace)
	stripped = strings.TrimPrefix(stripped, commentPrefix)
	return strings.TrimSpace(stripped)
}

//
// splitInlineComment split the line into content and trailing comment.
//
// The comment start at the first "//" that is preceded by white space.
// A "//" at the start of the stripped line, or glued to the previous word,
// for example in "https://example.com", is part of content.
//
func splitInlineComment(line string) (content, comment string) {
	stripped := strings.TrimLeftFunc(line, unicode.IsSpace)

	start := 0
	for {
		x := strings.Index(stripped[start:], commentPrefix)
		if x < 0 {
			break
		}
		x += start
		if x > 0 && isSpaceBefore(stripped, x) {
			content = strings.TrimRightFunc(stripped[:x], unicode.IsSpace)
			comment = strings.TrimSpace(stripped[x+2:])
			return content, comment
		}
		start = x + 2
	}
	return strings.TrimSpace(stripped), ""
}

// isSpaceBefore return true if the character before s[x] is white space.
func isSpaceBefore(s string, x int) bool {
	r, _ := utf8.DecodeLastRuneInString(s[:x])
	return unicode.IsSpace(r)
}
