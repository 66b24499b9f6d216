// Copyright 2026, Shulhan <ms@kilabit.info>. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shuLhan/share/lib/test"
)

func execute(args []string, stdin string) (stdout string, err error) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err = cmd.Execute()

	return out.String(), err
}

func TestHTMLCommand(t *testing.T) {
	got, err := execute([]string{"html"}, "Title\n    Body\n")
	if err != nil {
		t.Fatal(err)
	}
	test.Assert(t, "html", "<h1>Title</h1>\n<p>\n    Body<br>\n</p>\n", got, true)
}

func TestHTMLCommand_standaloneToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.html")

	err := os.WriteFile(in, []byte("Title\n    Body\n"), 0600)
	if err != nil {
		t.Fatal(err)
	}

	_, err = execute([]string{"html", "--standalone", "-o", out, in}, "")
	if err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	test.Assert(t, "title", true, bytes.Contains(got, []byte("<title>Title</title>")), true)
}

func TestMdastCommand(t *testing.T) {
	got, err := execute([]string{"mdast"}, "Body\n")
	if err != nil {
		t.Fatal(err)
	}
	exp := `{"type":"root","children":[{"type":"paragraph","children":[{"type":"text","value":"Body"}]}]}` + "\n"
	test.Assert(t, "mdast", exp, got, true)
}

func TestCheckCommand(t *testing.T) {
	_, err := execute([]string{"check"}, "line1\n    line2\n")
	test.Assert(t, "valid", nil, err, true)

	_, err = execute([]string{"check"}, "line1\n  line2\n")
	if err == nil {
		t.Fatal("expecting error, got nil")
	}
	test.Assert(t, "invalid", "<stdin>: Line 2: Indentation must be a multiple of 4 spaces.", err.Error(), true)
}
