// Copyright 2026, Shulhan <ms@kilabit.info>. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package spaceup

import (
	"errors"
	"testing"

	"github.com/shuLhan/share/lib/test"
)

func TestValidateIndentation(t *testing.T) {
	cases := []struct {
		desc string
		in   string
		exp  string
	}{{
		desc: "valid",
		in:   "line1\n    line2\n        line3\n    line4",
	}, {
		desc: "valid with blank lines",
		in:   "line1\n\n    line2\n  \n        line3\n\n    line4",
	}, {
		desc: "tab",
		in:   "line1\n\tline2",
		exp:  "Line 2: " + ReasonTab,
	}, {
		desc: "mixed tab and spaces",
		in:   "line1\n    \tline2",
		exp:  "Line 2: " + ReasonTab,
	}, {
		desc: "not multiple of four",
		in:   "line1\n  line2",
		exp:  "Line 2: " + ReasonNotUnits,
	}, {
		desc: "error on specific line",
		in:   "line1\n    line2\n      line3\n    line4",
		exp:  "Line 3: " + ReasonNotUnits,
	}}

	for _, c := range cases {
		err := ValidateIndentation(c.in)
		if len(c.exp) == 0 {
			test.Assert(t, c.desc, nil, err, true)
			continue
		}

		var ierr *IndentationError
		test.Assert(t, c.desc+": errors.As", true, errors.As(err, &ierr), true)
		test.Assert(t, c.desc, c.exp, err.Error(), true)
	}
}

func TestParse_ignoreInvalidIndentation(t *testing.T) {
	doc := Parse("Title\n  Body\n")
	test.Assert(t, "Children", []Node{
		newHeading(1, "Title"),
		newParagraph("Body"),
	}, doc.Children, true)
}
