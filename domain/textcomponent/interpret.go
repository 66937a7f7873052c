package textcomponent

import (
	"fmt"
	"strings"
)

// Segment is one run of text with a single effective style.
type Segment struct {
	Text  string
	Style ResolvedStyle
	Click ClickAction
	Hover string

	onClick func()
}

// Interactive reports whether activating the segment does something.
func (s Segment) Interactive() bool {
	return s.onClick != nil
}

// Activate runs the click action bound at interpretation time.
func (s Segment) Activate() {
	if s.onClick != nil {
		s.onClick()
	}
}

// frame is what a node hands down to its children.
type frame struct {
	style ResolvedStyle
	click ClickAction
	hover HoverAction
}

// Interpret flattens c into segments in reading order. A failure anywhere in the tree
// degrades the whole input to a single unstyled segment holding its string form.
// A nil actions binds every click to a no-op.
func Interpret(c Component, actions Actions) (segments []Segment) {
	if actions == nil {
		actions = ActionFuncs{}
	}
	defer func() {
		if r := recover(); r != nil {
			segments = []Segment{{Text: coerce(c)}}
		}
	}()
	return interpret(c, frame{}, actions, nil)
}

// InterpretJSON parses and interprets raw JSON, falling back to the raw input as text.
func InterpretJSON(data []byte, actions Actions) []Segment {
	c, err := Parse(data)
	if err != nil {
		return []Segment{{Text: string(data)}}
	}
	return Interpret(c, actions)
}

// Render concatenates segment texts.
func Render(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

func interpret(c Component, parent frame, actions Actions, out []Segment) []Segment {
	switch v := c.(type) {
	case nil:
		return out
	case Text:
		return append(out, parent.segment(string(v), actions))
	case List:
		for _, item := range v {
			out = interpret(item, parent, actions, out)
		}
		return out
	case *Node:
		if v == nil {
			return out
		}
		return interpretNode(*v, parent, actions, out)
	case Node:
		return interpretNode(v, parent, actions, out)
	default:
		panic(fmt.Sprintf("unsupported component %T", c))
	}
}

func interpretNode(n Node, parent frame, actions Actions, out []Segment) []Segment {
	current := frame{
		style: parent.style.merge(n.Style),
		click: parent.click,
		hover: parent.hover,
	}
	if n.Click != nil {
		current.click = n.Click
	}
	if n.Hover != nil {
		current.hover = n.Hover
	}

	out = append(out, current.segment(contentText(n.Content), actions))
	for _, child := range n.Children {
		out = interpret(child, current, actions, out)
	}
	return out
}

func (f frame) segment(text string, actions Actions) Segment {
	return Segment{
		Text:    text,
		Style:   f.style.withHints(),
		Click:   f.click,
		Hover:   hoverText(f.hover),
		onClick: bindClick(f.click, actions),
	}
}

func contentText(content Content) string {
	switch v := content.(type) {
	case nil:
		return ""
	case Literal:
		return v.Text
	case Translation:
		return "[" + v.Key + "]"
	case Score:
		name, value := v.Name, v.Value
		if name == "" {
			name = "Unknown"
		}
		if value == "" {
			value = "0"
		}
		return name + ": " + value
	case Selector:
		return "[@" + v.Pattern + "]"
	case NBT:
		return "[NBT: " + v.Raw + "]"
	default:
		panic(fmt.Sprintf("unsupported content %T", content))
	}
}

func bindClick(click ClickAction, actions Actions) func() {
	switch v := click.(type) {
	case OpenURL:
		return func() { actions.OpenURL(v.URL) }
	case RunCommand:
		return func() { actions.RunCommand(v.Command) }
	case SuggestCommand:
		return func() { actions.SuggestCommand(v.Command) }
	case ChangePage:
		return func() { actions.ChangePage(v.Page) }
	case CopyToClipboard:
		return func() { actions.CopyToClipboard(v.Text) }
	default:
		return nil
	}
}

func hoverText(hover HoverAction) string {
	switch v := hover.(type) {
	case ShowText:
		return PlainText(v.Contents)
	case ShowItem:
		return "Item: " + v.Raw
	case ShowEntity:
		return "Entity: " + v.Raw
	default:
		return ""
	}
}

// coerce is the string form used when interpretation fails.
func coerce(c Component) (s string) {
	defer func() {
		if recover() != nil {
			s = fmt.Sprintf("%v", c)
		}
	}()
	if c == nil {
		return ""
	}
	return c.String()
}
