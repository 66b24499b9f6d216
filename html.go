// Copyright 2026, Shulhan <ms@kilabit.info>. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package spaceup

import (
	"fmt"
	"io"
	"strings"
)

const htmlIndent = "    "

//
// HTMLOptions define the options for rendering document into HTML.
// The zero value is ready to use.
//
type HTMLOptions struct {
	// Inline render the text of headings, paragraph lines, and list
	// items.
	// If its nil, the text is rendered with goldmark.
	Inline InlineRenderer

	// ClampHeadings emit the heading with level greater than six as
	// "<h6>".
	// By default the heading is emitted with its original level.
	ClampHeadings bool
}

// htmlRenderer convert the nodes into list of HTML fragments.
type htmlRenderer struct {
	inline InlineRenderer
	clamp  bool
	out    []string
}

func newHTMLRenderer(opts *HTMLOptions) (hr *htmlRenderer) {
	hr = &htmlRenderer{
		inline: defaultInline,
	}
	if opts != nil {
		if opts.Inline != nil {
			hr.inline = opts.Inline
		}
		hr.clamp = opts.ClampHeadings
	}
	return hr
}

//
// ToHTML write the document as a list of HTML block elements joined by new
// line.
// The output does not contain "<html>" or "<body>" elements.
//
func (doc *Document) ToHTML(w io.Writer, opts *HTMLOptions) (err error) {
	_, err = io.WriteString(w, doc.RenderHTML(opts))
	if err != nil {
		return fmt.Errorf("spaceup.ToHTML: %w", err)
	}
	return nil
}

// HTML return the document as HTML fragment using the default options.
func (doc *Document) HTML() string {
	return doc.RenderHTML(nil)
}

// RenderHTML return the document as HTML fragment.
func (doc *Document) RenderHTML(opts *HTMLOptions) string {
	hr := newHTMLRenderer(opts)
	for _, node := range doc.Children {
		hr.renderNode(node)
	}
	return strings.Join(hr.out, "\n")
}

func (hr *htmlRenderer) renderNode(node Node) {
	switch n := node.(type) {
	case *Heading:
		hr.renderHeading(n)
	case *Paragraph:
		if n.IsBulleted() {
			hr.renderList(n)
		} else {
			hr.renderParagraph(n)
		}
	case *Comment:
		if len(n.Text) > 0 {
			hr.out = append(hr.out, "<!-- "+n.Text+" -->")
		}
	}
}

func (hr *htmlRenderer) renderHeading(head *Heading) {
	level := head.Level
	if hr.clamp {
		level = head.Depth()
	}
	hr.out = append(hr.out, fmt.Sprintf("<h%d>%s</h%d>", level,
		hr.inline.RenderInline(head.Content.Text), level))
}

func (hr *htmlRenderer) renderList(para *Paragraph) {
	hr.out = append(hr.out, "<ul>")
	for _, pline := range para.Lines {
		hr.out = append(hr.out, htmlIndent+"<li>"+
			hr.inline.RenderInline(pline.BulletText())+"</li>")
	}
	hr.out = append(hr.out, "</ul>")
}

func (hr *htmlRenderer) renderParagraph(para *Paragraph) {
	hr.out = append(hr.out, "<p>")
	for _, pline := range para.Lines {
		text := hr.inline.RenderInline(pline.Content.Text)
		if pline.HasInlineComment() {
			hr.out = append(hr.out, fmt.Sprintf("%s%s  <!-- %s --><br>",
				htmlIndent, text, pline.InlineComment))
		} else {
			hr.out = append(hr.out, htmlIndent+text+"<br>")
		}
	}
	hr.out = append(hr.out, "</p>")
}
