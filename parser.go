// Copyright 2026, Shulhan <ms@kilabit.info>. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package spaceup

import (
	"log"

	"github.com/shuLhan/share/lib/debug"
)

//
// blockParser hold the state of a single parse.
// It must not be reused or shared between documents.
//
type blockParser struct {
	lines lines
	pos   int

	// stack of indentation of opened headings.
	// Its length is the level of the next heading.
	stack []int

	// prevIndent is the indentation of the last consumed line with
	// content, across the whole document.
	prevIndent int

	children []Node
}

func newBlockParser(ls []string) (bp *blockParser) {
	bp = &blockParser{
		lines: ls,
		stack: []int{0},
	}
	return bp
}

// parse consume all lines and return the top level nodes.
func (bp *blockParser) parse() []Node {
	bp.parseBlock(0)
	return bp.children
}

//
// parseBlock consume lines whose indentation is greater or equal to
// currIndent.
//
func (bp *blockParser) parseBlock(currIndent int) {
	for bp.pos < len(bp.lines) {
		bp.skipNonContent()
		if bp.pos >= len(bp.lines) {
			return
		}

		line := bp.lines[bp.pos]
		indent := indentWidth(line)
		if indent < currIndent {
			return
		}

		content, comment := splitInlineComment(line)
		if len(content) == 0 {
			bp.pos++
			continue
		}

		nextIndent := bp.lines.nextIndent(bp.pos)
		hasBlank := bp.lines.hasBlankBeforeNext(bp.pos)

		if bp.isAmbiguousDecrease(indent, nextIndent, hasBlank) {
			bp.openHeading(indent, content, true)
			continue
		}
		if isHeadingOpener(indent, nextIndent, hasBlank) {
			bp.openHeading(indent, content, false)
			continue
		}
		bp.openParagraph(indent, content, comment)
	}
}

//
// skipNonContent skip empty lines and emit a Comment for each comment line.
// Comment with empty text is dropped.
//
func (bp *blockParser) skipNonContent() {
	for ; bp.pos < len(bp.lines); bp.pos++ {
		line := bp.lines[bp.pos]
		if indentWidth(line) != noIndent {
			return
		}
		if !isCommentLine(line) {
			continue
		}
		text := commentText(line)
		if len(text) > 0 {
			bp.children = append(bp.children, &Comment{Text: text})
		}
	}
}

//
// isHeadingOpener return true if the line is followed by deeper content, or
// by content at the same indentation after a separator.
//
func isHeadingOpener(indent, nextIndent int, hasBlank bool) bool {
	if nextIndent > indent {
		return true
	}
	return nextIndent == indent && hasBlank
}

//
// isAmbiguousDecrease return true if the indentation just went down and the
// next line continue at the same indentation without separator.
//
// The line can be read either as a new heading or as the start of a
// paragraph.
// Such line is always promoted to heading, and the lines that follow it at
// the same indentation are folded into one paragraph under it.
//
func (bp *blockParser) isAmbiguousDecrease(indent, nextIndent int, hasBlank bool) bool {
	return bp.prevIndent > indent && nextIndent == indent && !hasBlank
}

func (bp *blockParser) openHeading(indent int, content string, forced bool) {
	level := len(bp.stack)

	if debug.Value >= 2 {
		log.Printf("spaceup: line %d: heading level %d, indent %d, forced %t\n",
			bp.pos+1, level, indent, forced)
	}

	bp.children = append(bp.children, &Heading{
		Level:   level,
		Content: InlineText{Text: content},
	})
	bp.prevIndent = indent
	bp.stack = append(bp.stack, indent)
	bp.pos++

	if forced {
		plines := bp.collectLines(indent, nil)
		if len(plines) > 0 {
			bp.children = append(bp.children, &Paragraph{Lines: plines})
		}
	}

	bp.parseBlock(indent + 1)

	bp.stack = bp.stack[:len(bp.stack)-1]
}

func (bp *blockParser) openParagraph(indent int, content, comment string) {
	if debug.Value >= 2 {
		log.Printf("spaceup: line %d: paragraph, indent %d\n", bp.pos+1, indent)
	}

	plines := []ParagraphLine{{
		Content:       InlineText{Text: content},
		InlineComment: comment,
	}}
	bp.pos++

	plines = bp.collectLines(indent, plines)

	bp.children = append(bp.children, &Paragraph{Lines: plines})
	bp.prevIndent = indent
}

//
// collectLines consume all following lines with exactly the same
// indentation.
// It stop at the first line with different indentation, an empty line, or
// a comment line.
//
func (bp *blockParser) collectLines(indent int, plines []ParagraphLine) []ParagraphLine {
	for ; bp.pos < len(bp.lines); bp.pos++ {
		line := bp.lines[bp.pos]
		if indentWidth(line) != indent {
			break
		}
		content, comment := splitInlineComment(line)
		if len(content) == 0 {
			continue
		}
		plines = append(plines, ParagraphLine{
			Content:       InlineText{Text: content},
			InlineComment: comment,
		})
		bp.prevIndent = indent
	}
	return plines
}
