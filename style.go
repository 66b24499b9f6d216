// Copyright 2026, Shulhan <ms@kilabit.info>. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package spaceup

import "html/template"

const defaultStyle = `
body {
	margin: 0 auto;
	max-width: 48em;
	padding: 1em;
	font-family: sans-serif;
	line-height: 1.5;
}
h1, h2, h3, h4, h5, h6 {
	line-height: 1.2;
}
p {
	margin: 0 0 1em 0;
}
ul {
	padding-left: 1.5em;
}`

//
// embeddedCSS return the default style for standalone page.
//
func embeddedCSS() *template.CSS {
	css := template.CSS(defaultStyle) // nolint:gosec
	return &css
}
