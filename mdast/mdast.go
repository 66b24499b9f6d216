// Copyright 2026, Shulhan <ms@kilabit.info>. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

//
// Package mdast convert Spaceup document into a markdown abstract syntax
// tree, following the node types of mdast specification
// (https://github.com/syntax-tree/mdast).
//
// The tree is meant to be consumed by other tools, for example serialized
// as JSON and rendered by an mdast compatible renderer.
// Inline markup is not parsed; each text become a single text node.
//
package mdast

import (
	"github.com/shuLhan/spaceup"
)

// List of node types.
const (
	TypeRoot      = "root"
	TypeHeading   = "heading"
	TypeParagraph = "paragraph"
	TypeList      = "list"
	TypeListItem  = "listItem"
	TypeText      = "text"
	TypeBreak     = "break"
	TypeHTML      = "html"
)

// DataHeadingLevel is the key in Node.Data that keep the original level of
// heading deeper than six.
const DataHeadingLevel = "spaceupHeadingLevel"

//
// Node is the node of mdast tree.
// Which fields are set depends on the Type.
//
type Node struct {
	Type     string         `json:"type"`
	Value    string         `json:"value,omitempty"`
	Depth    int            `json:"depth,omitempty"`
	Ordered  *bool          `json:"ordered,omitempty"`
	Spread   *bool          `json:"spread,omitempty"`
	Children []*Node        `json:"children,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

//
// FromDocument convert the Spaceup document into mdast root node.
//
func FromDocument(doc *spaceup.Document) (root *Node) {
	root = &Node{
		Type: TypeRoot,
	}
	if doc == nil {
		return root
	}
	for _, node := range doc.Children {
		child := fromNode(node)
		if child != nil {
			root.Children = append(root.Children, child)
		}
	}
	return root
}

func fromNode(node spaceup.Node) *Node {
	switch n := node.(type) {
	case *spaceup.Heading:
		return fromHeading(n)
	case *spaceup.Paragraph:
		if n.IsBulleted() {
			return fromBulletedParagraph(n)
		}
		return fromParagraph(n)
	case *spaceup.Comment:
		if len(n.Text) == 0 {
			return nil
		}
		return newHTMLComment(n.Text)
	}
	return nil
}

func fromHeading(head *spaceup.Heading) (node *Node) {
	node = &Node{
		Type:     TypeHeading,
		Depth:    head.Depth(),
		Children: textChildren(head.Content.Text),
	}
	if head.Level > spaceup.MaxHeadingDepth {
		node.Data = map[string]any{
			DataHeadingLevel: head.Level,
		}
	}
	return node
}

//
// fromParagraph convert each line into text, followed by its inline
// comment.
// Lines are separated by break node.
//
func fromParagraph(para *spaceup.Paragraph) (node *Node) {
	node = &Node{
		Type: TypeParagraph,
	}
	for x, pline := range para.Lines {
		node.Children = append(node.Children, textChildren(pline.Content.Text)...)
		if pline.HasInlineComment() {
			node.Children = append(node.Children, newHTMLComment(pline.InlineComment))
		}
		if x < len(para.Lines)-1 {
			node.Children = append(node.Children, &Node{Type: TypeBreak})
		}
	}
	return node
}

//
// fromBulletedParagraph convert each line into a list item that contains
// one paragraph.
//
func fromBulletedParagraph(para *spaceup.Paragraph) (list *Node) {
	list = &Node{
		Type:    TypeList,
		Ordered: newBool(false),
		Spread:  newBool(false),
	}
	for _, pline := range para.Lines {
		item := &Node{
			Type:     TypeParagraph,
			Children: textChildren(pline.BulletText()),
		}
		if pline.HasInlineComment() {
			item.Children = append(item.Children, newHTMLComment(pline.InlineComment))
		}
		list.Children = append(list.Children, &Node{
			Type:     TypeListItem,
			Spread:   newBool(false),
			Children: []*Node{item},
		})
	}
	return list
}

func textChildren(text string) []*Node {
	if len(text) == 0 {
		return nil
	}
	return []*Node{{Type: TypeText, Value: text}}
}

func newHTMLComment(text string) *Node {
	return &Node{
		Type:  TypeHTML,
		Value: "<!-- " + text + " -->",
	}
}

func newBool(v bool) *bool {
	return &v
}
