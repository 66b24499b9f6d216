// Copyright 2026, Shulhan <ms@kilabit.info>. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package spaceup

import (
	"testing"

	"github.com/shuLhan/share/lib/test"
)

func TestIndentWidth(t *testing.T) {
	cases := []struct {
		line string
		exp  int
	}{{
		line: "",
		exp:  noIndent,
	}, {
		line: "    ",
		exp:  noIndent,
	}, {
		line: "// comment",
		exp:  noIndent,
	}, {
		line: "        // indented comment",
		exp:  noIndent,
	}, {
		line: "text",
		exp:  0,
	}, {
		line: "    text",
		exp:  4,
	}, {
		line: "\ttext",
		exp:  1,
	}, {
		line: "  text // trailing",
		exp:  2,
	}}

	for _, c := range cases {
		got := indentWidth(c.line)
		test.Assert(t, c.line, c.exp, got, true)
	}
}

func TestSplitInlineComment(t *testing.T) {
	cases := []struct {
		line       string
		expContent string
		expComment string
	}{{
		line:       "text",
		expContent: "text",
	}, {
		line:       "    text // note",
		expContent: "text",
		expComment: "note",
	}, {
		line:       "see https://example.com",
		expContent: "see https://example.com",
	}, {
		line:       "see https://example.com // link",
		expContent: "see https://example.com",
		expComment: "link",
	}, {
		line:       "x//y",
		expContent: "x//y",
	}, {
		line:       "text\t//tabbed",
		expContent: "text",
		expComment: "tabbed",
	}, {
		line:       "text\u00a0// non-breaking space",
		expContent: "text",
		expComment: "non-breaking space",
	}, {
		line:       "tëxt// glued",
		expContent: "tëxt// glued",
	}, {
		line:       "text //",
		expContent: "text",
	}, {
		line:       "a // b // c",
		expContent: "a",
		expComment: "b // c",
	}}

	for _, c := range cases {
		content, comment := splitInlineComment(c.line)
		test.Assert(t, c.line+": content", c.expContent, content, true)
		test.Assert(t, c.line+": comment", c.expComment, comment, true)
	}
}

func TestCommentText(t *testing.T) {
	cases := []struct {
		line string
		exp  string
	}{{
		line: "  // just a comment",
		exp:  "just a comment",
	}, {
		line: "//no space",
		exp:  "no space",
	}, {
		line: "  //",
		exp:  "",
	}}

	for _, c := range cases {
		test.Assert(t, c.line, true, isCommentLine(c.line), true)
		test.Assert(t, c.line, c.exp, commentText(c.line), true)
	}
}
