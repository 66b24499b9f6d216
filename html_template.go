// Copyright 2026, Shulhan <ms@kilabit.info>. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package spaceup

import (
	"html/template"
)

const templatePage = "PAGE"

func newHTMLTemplate() (tmpl *template.Template, err error) {
	tmpl = template.New("HTML")
	tmpl, err = tmpl.Parse(`
{{- define "BEGIN" -}}
<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta http-equiv="X-UA-Compatible" content="IE=edge">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<meta name="generator" content="spaceup">
	{{- if .Title}}
<title>{{.Title}}</title>
	{{- end}}
	{{- range .Styles}}
<link rel="stylesheet" href="{{.}}">
	{{- end}}
	{{- if .EmbeddedCSS}}
<style>
{{.EmbeddedCSS}}
</style>
	{{- end}}
</head>
<body>
{{- end -}}

{{- define "END"}}
</body>
</html>
{{- end -}}

{{- define "PAGE" -}}
{{template "BEGIN" .}}
{{.Body}}
{{- template "END" .}}
{{- end -}}
`)
	return tmpl, err
}
