// Copyright 2026, Shulhan <ms@kilabit.info>. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package spaceup

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/shuLhan/share/lib/parser"
)

//
// Document represent content of Spaceup markup that has been parsed.
//
// Children is a flat list of headings, paragraphs, and comments in the
// order they appear in the source.
// The hierarchy is implied by the heading levels only.
//
type Document struct {
	file string

	Children []Node
}

//
// Open the Spaceup file and parse it.
//
func Open(file string) (doc *Document, err error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("spaceup.Open %s: %w", file, err)
	}

	doc = ParseBytes(raw)
	doc.file = file

	return doc, nil
}

//
// Parse the content of Spaceup markup.
// Any input produce a document; there is no invalid input.
//
func Parse(content string) (doc *Document) {
	bp := newBlockParser(splitLines(content))
	doc = &Document{
		Children: bp.parse(),
	}
	return doc
}

// ParseBytes parse the raw content of Spaceup markup.
func ParseBytes(content []byte) *Document {
	return Parse(string(content))
}

// File return the path of document, if its created using Open.
func (doc *Document) File() string {
	return doc.file
}

//
// Title return the text of the first heading in document.
// It will return empty string if document does not have heading.
//
func (doc *Document) Title() string {
	for _, node := range doc.Children {
		head, ok := node.(*Heading)
		if ok {
			return head.Content.Text
		}
	}
	return ""
}

//
// splitLines split content by "\n", with trailing white spaces, including
// the "\r" of "\r\n", removed from each line.
//
func splitLines(content string) (out []string) {
	p := parser.New(content, "\n")
	for {
		line, c := p.Line()
		if c == 0 {
			// EOF. The last line without "\n" is returned with c == 0
			// and the parser does not move past it.
			if len(line) > 0 {
				out = append(out, strings.TrimRightFunc(line, unicode.IsSpace))
			}
			break
		}
		out = append(out, strings.TrimRightFunc(line, unicode.IsSpace))
	}
	return out
}
