// Package textcomponent models Minecraft-style structured text and flattens it into
// styled, interactive segments ready for rendering.
// It has no dependency on any UI: side effects go through the Actions capability.
package textcomponent

import "strings"

// Component is one of Text, List or Node.
type Component interface {
	isComponent()
	String() string
}

// Text is a bare string component.
type Text string

func (Text) isComponent() {}

func (t Text) String() string { return string(t) }

// List is an array of components sharing the same inherited style.
type List []Component

func (List) isComponent() {}

func (l List) String() string {
	var b strings.Builder
	for _, c := range l {
		if c != nil {
			b.WriteString(c.String())
		}
	}
	return b.String()
}

// Node is a styled component with exactly one content source and optional children.
type Node struct {
	Content  Content
	Style    Style
	Click    ClickAction
	Hover    HoverAction
	Children []Component

	raw string
}

func (Node) isComponent() {}

// String returns the JSON the node was parsed from, or its literal text when built in code.
func (n Node) String() string {
	if n.raw != "" {
		return n.raw
	}
	return PlainText(n)
}

// Content is the single content source of a Node.
type Content interface {
	isContent()
}

type Literal struct {
	Text string
}

// Translation carries a localization key; arguments are kept but not substituted.
type Translation struct {
	Key  string
	With []Component
}

type Score struct {
	Name      string
	Objective string
	Value     string
}

type Selector struct {
	Pattern string
}

type NBT struct {
	Raw string
}

func (Literal) isContent()     {}
func (Translation) isContent() {}
func (Score) isContent()       {}
func (Selector) isContent()    {}
func (NBT) isContent()         {}

// ClickAction is what activating a segment does.
type ClickAction interface {
	isClick()
}

type OpenURL struct {
	URL string
}

type RunCommand struct {
	Command string
}

// SuggestCommand fills the input with Command without executing it.
type SuggestCommand struct {
	Command string
}

type ChangePage struct {
	Page int
}

type CopyToClipboard struct {
	Text string
}

func (OpenURL) isClick()         {}
func (RunCommand) isClick()      {}
func (SuggestCommand) isClick()  {}
func (ChangePage) isClick()      {}
func (CopyToClipboard) isClick() {}

// HoverAction is resolved into a plain-text hover label.
type HoverAction interface {
	isHover()
}

type ShowText struct {
	Contents Component
}

type ShowItem struct {
	Raw string
}

type ShowEntity struct {
	Raw string
}

func (ShowText) isHover()   {}
func (ShowItem) isHover()   {}
func (ShowEntity) isHover() {}

// PlainText concatenates the literal text of c depth-first, ignoring style,
// translations, scores, selectors and NBT.
func PlainText(c Component) string {
	var b strings.Builder
	writePlain(&b, c)
	return b.String()
}

func writePlain(b *strings.Builder, c Component) {
	switch v := c.(type) {
	case Text:
		b.WriteString(string(v))
	case List:
		for _, item := range v {
			writePlain(b, item)
		}
	case Node:
		if lit, ok := v.Content.(Literal); ok {
			b.WriteString(lit.Text)
		}
		for _, child := range v.Children {
			writePlain(b, child)
		}
	case *Node:
		if v != nil {
			writePlain(b, *v)
		}
	}
}
