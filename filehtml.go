// Copyright 2026, Shulhan <ms@kilabit.info>. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package spaceup

import (
	"fmt"
	"html/template"
	"io"
)

//
// PageOptions define the options for rendering document as a full HTML
// page.
//
type PageOptions struct {
	HTMLOptions

	// Title of the page.
	// If its empty, the text of the first heading is used.
	Title string

	// Stylesheets contains list of URL to be linked from the page.
	// If its empty, the default style is embedded into the page.
	Stylesheets []string
}

//
// fileHTML represent an HTML metadata for header and its body.
//
type fileHTML struct {
	Title       string
	EmbeddedCSS *template.CSS
	Styles      []string
	Body        template.HTML
}

//
// unpackDocument set the page title, styles, and body from the document.
//
func (fhtml *fileHTML) unpackDocument(doc *Document, opts *PageOptions) {
	fhtml.Title = opts.Title
	if len(fhtml.Title) == 0 {
		fhtml.Title = doc.Title()
	}

	fhtml.Styles = append(fhtml.Styles[:0], opts.Stylesheets...)
	if len(fhtml.Styles) == 0 {
		fhtml.EmbeddedCSS = embeddedCSS()
	}

	fhtml.Body = template.HTML(doc.RenderHTML(&opts.HTMLOptions)) // nolint:gosec
}

//
// ToHTMLPage write the document as a complete HTML page, including the
// "<html>", "<head>", and "<body>" elements.
//
func (doc *Document) ToHTMLPage(w io.Writer, opts *PageOptions) (err error) {
	if opts == nil {
		opts = &PageOptions{}
	}

	tmpl, err := newHTMLTemplate()
	if err != nil {
		return fmt.Errorf("spaceup.ToHTMLPage: %w", err)
	}

	fhtml := &fileHTML{}
	fhtml.unpackDocument(doc, opts)

	err = tmpl.ExecuteTemplate(w, templatePage, fhtml)
	if err != nil {
		return fmt.Errorf("spaceup.ToHTMLPage: %w", err)
	}
	return nil
}
