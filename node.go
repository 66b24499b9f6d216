// Copyright 2026, Shulhan <ms@kilabit.info>. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package spaceup

import (
	"strings"
	"unicode"

	"github.com/yuin/goldmark/ast"
)

// NodeKind define the kind of top level node in Document.
type NodeKind int

// List of node kinds.
const (
	NodeKindUnknown   NodeKind = iota
	NodeKindHeading            // Line followed by deeper or separated content.
	NodeKindParagraph          // Run of lines with the same indentation.
	NodeKindComment            // Line started with "//".
)

// MaxHeadingDepth is the deepest heading that HTML can express.
const MaxHeadingDepth = 6

const bulletPrefix = "- "

//
// Node is the building block of Spaceup document.
// Node is one of *Heading, *Paragraph, or *Comment.
//
type Node interface {
	Kind() NodeKind
}

//
// InlineText contains the raw text of a heading or a paragraph line.
// The text is never interpreted by the parser; markup inside it is
// resolved by the renderer.
//
type InlineText struct {
	Text string

	// Tokens is a slot for pre-tokenized inline spans.
	// The parser does not fill it.
	Tokens []ast.Node
}

//
// ParagraphLine is one line of Paragraph, with its optional trailing
// comment.
// Empty InlineComment means the line does not have one.
//
type ParagraphLine struct {
	Content       InlineText
	InlineComment string
}

// HasInlineComment return true if the line has non empty trailing comment.
func (pline ParagraphLine) HasInlineComment() bool {
	return len(pline.InlineComment) > 0
}

// IsBullet return true if the line content started with "- ".
func (pline ParagraphLine) IsBullet() bool {
	text := strings.TrimLeftFunc(pline.Content.Text, unicode.IsSpace)
	return strings.HasPrefix(text, bulletPrefix)
}

//
// BulletText return the line content without its leading "- ".
// It will return the trimmed content if the line is not a bullet.
//
func (pline ParagraphLine) BulletText() string {
	text := strings.TrimLeftFunc(pline.Content.Text, unicode.IsSpace)
	text = strings.TrimPrefix(text, bulletPrefix)
	return strings.TrimSpace(text)
}

// Paragraph is a non-empty run of lines sharing the same indentation.
type Paragraph struct {
	Lines []ParagraphLine
}

// Kind return NodeKindParagraph.
func (para *Paragraph) Kind() NodeKind {
	return NodeKindParagraph
}

//
// IsBulleted return true if every line in paragraph started with "- ".
// A paragraph without lines is not bulleted.
//
func (para *Paragraph) IsBulleted() bool {
	if len(para.Lines) == 0 {
		return false
	}
	for _, pline := range para.Lines {
		if !pline.IsBullet() {
			return false
		}
	}
	return true
}

//
// Heading is a line that opens a nested block.
// Level is the depth of indentation stack when the line is parsed, it may
// be greater than MaxHeadingDepth.
//
type Heading struct {
	Level   int
	Content InlineText
}

// Kind return NodeKindHeading.
func (head *Heading) Kind() NodeKind {
	return NodeKindHeading
}

// Depth return the heading level clamped to [1, MaxHeadingDepth].
func (head *Heading) Depth() int {
	if head.Level < 1 {
		return 1
	}
	if head.Level > MaxHeadingDepth {
		return MaxHeadingDepth
	}
	return head.Level
}

// Comment is the text of standalone "//" line.
type Comment struct {
	Text string
}

// Kind return NodeKindComment.
func (cmt *Comment) Kind() NodeKind {
	return NodeKindComment
}
