// Copyright 2026, Shulhan <ms@kilabit.info>. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package spaceup

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shuLhan/share/lib/test"
)

func TestDocumentToHTMLPage(t *testing.T) {
	doc := Parse("Title\n    Body\n")

	cases := []struct {
		desc      string
		opts      *PageOptions
		expHave   []string
		expAbsent []string
	}{{
		desc: "default",
		expHave: []string{
			"<title>Title</title>",
			"<style>",
			"<body>\n<h1>Title</h1>\n<p>\n    Body<br>\n</p>\n</body>",
		},
		expAbsent: []string{
			`<link rel="stylesheet"`,
		},
	}, {
		desc: "with title and stylesheet",
		opts: &PageOptions{
			HTMLOptions: HTMLOptions{Inline: rawInline},
			Title:       "My <notes>",
			Stylesheets: []string{"/style.css"},
		},
		expHave: []string{
			"<title>My &lt;notes&gt;</title>",
			`<link rel="stylesheet" href="/style.css">`,
		},
		expAbsent: []string{
			"<style>",
		},
	}}

	for _, c := range cases {
		var buf bytes.Buffer

		err := doc.ToHTMLPage(&buf, c.opts)
		if err != nil {
			t.Fatal(err)
		}

		got := buf.String()

		test.Assert(t, c.desc+": prefix", true, strings.HasPrefix(got, "<!DOCTYPE html>"), true)
		test.Assert(t, c.desc+": suffix", true, strings.HasSuffix(got, "</html>"), true)
		for _, exp := range c.expHave {
			test.Assert(t, c.desc+": "+exp, true, strings.Contains(got, exp), true)
		}
		for _, exp := range c.expAbsent {
			test.Assert(t, c.desc+": no "+exp, false, strings.Contains(got, exp), true)
		}
	}
}

func TestEmbeddedCSS(t *testing.T) {
	css := embeddedCSS()
	test.Assert(t, "embeddedCSS", defaultStyle, string(*css), true)
}
