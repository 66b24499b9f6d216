// Copyright 2026, Shulhan <ms@kilabit.info>. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package spaceup

import (
	"bytes"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/util"
)

//
// InlineRenderer convert a single span of text, that may contains inline
// markup such as emphasis or links, into inline HTML.
//
type InlineRenderer interface {
	RenderInline(text string) string
}

// InlineRendererFunc is an adapter to use ordinary function as
// InlineRenderer.
type InlineRendererFunc func(text string) string

// RenderInline call f(text).
func (f InlineRendererFunc) RenderInline(text string) string {
	return f(text)
}

// defaultInline is used when no InlineRenderer is set on options.
var defaultInline = NewMarkdownInline()

//
// MarkdownInline render inline span using goldmark.
//
type MarkdownInline struct {
	md goldmark.Markdown
}

//
// NewMarkdownInline create new InlineRenderer with strike through
// extension enabled.
//
// The only block parser is the paragraph parser, so text that looks like a
// list item, a heading, or a thematic break, for example "- a" or "# t",
// is kept as text instead of rendered as block element.
//
func NewMarkdownInline() (mi *MarkdownInline) {
	inlineParser := parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewParagraphParser(), 1000),
		),
		parser.WithInlineParsers(parser.DefaultInlineParsers()...),
		parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
	)

	mi = &MarkdownInline{
		md: goldmark.New(
			goldmark.WithParser(inlineParser),
			goldmark.WithExtensions(
				extension.Strikethrough,
			),
		),
	}
	return mi
}

//
// RenderInline convert the text into HTML and remove the paragraph that
// wrap it.
// If conversion fail, the text is returned with HTML characters escaped.
//
func (mi *MarkdownInline) RenderInline(text string) string {
	var buf bytes.Buffer

	err := mi.md.Convert([]byte(text), &buf)
	if err != nil {
		return html.EscapeString(text)
	}

	out := strings.TrimSpace(buf.String())
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") {
		out = out[3 : len(out)-4]
	}
	return out
}
