package textcomponent

import (
	"chat-view/errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

// Parse decodes a JSON text component. Scalars become Text, arrays become List and
// objects become Node. Unknown fields and unknown actions are ignored; a field of the
// wrong shape (extra that is not an array, an event that is not an object, ...) is
// reported as ErrMalformedComponent.
func Parse(data []byte) (Component, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid json", errors.ErrMalformedComponent)
	}
	return fromResult(gjson.ParseBytes(data))
}

// ParseString treats s as structured text only when it holds a component: an object
// with a content key or extra, or a list of such objects (strings may sit between
// them). Anything else, "[1, 2, 3]" or "{}" included, stays plain Text.
func ParseString(s string) Component {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return Text(s)
	}
	if !gjson.Valid(trimmed) || !isComponent(gjson.Parse(trimmed)) {
		return Text(s)
	}
	c, err := Parse([]byte(trimmed))
	if err != nil {
		return Text(s)
	}
	return c
}

var componentKeys = []string{"text", "translate", "score", "selector", "nbt", "extra"}

func isComponent(r gjson.Result) bool {
	switch {
	case r.IsObject():
		return lo.SomeBy(componentKeys, func(key string) bool { return r.Get(key).Exists() })
	case r.IsArray():
		items := r.Array()
		hasNode := false
		for _, item := range items {
			switch {
			case item.Type == gjson.String:
			case isComponent(item):
				hasNode = true
			default:
				return false
			}
		}
		return hasNode
	default:
		return false
	}
}

func fromResult(r gjson.Result) (Component, error) {
	switch {
	case r.IsArray():
		items := r.Array()
		list := make(List, 0, len(items))
		for _, item := range items {
			c, err := fromResult(item)
			if err != nil {
				return nil, err
			}
			list = append(list, c)
		}
		return list, nil
	case r.IsObject():
		return nodeFromResult(r)
	case r.Type == gjson.String:
		return Text(r.String()), nil
	case r.Type == gjson.Null:
		return Text(""), nil
	default:
		// numbers and booleans render as written
		return Text(r.Raw), nil
	}
}

func nodeFromResult(r gjson.Result) (Node, error) {
	node := Node{raw: r.Raw}

	content, err := contentFromResult(r)
	if err != nil {
		return Node{}, err
	}
	node.Content = content

	if node.Style, err = styleFromResult(r); err != nil {
		return Node{}, err
	}
	if node.Click, err = clickFromResult(r); err != nil {
		return Node{}, err
	}
	if node.Hover, err = hoverFromResult(r); err != nil {
		return Node{}, err
	}

	if extra := r.Get("extra"); extra.Exists() {
		if !extra.IsArray() {
			return Node{}, fmt.Errorf("%w: extra must be an array", errors.ErrMalformedComponent)
		}
		for _, item := range extra.Array() {
			child, err := fromResult(item)
			if err != nil {
				return Node{}, err
			}
			node.Children = append(node.Children, child)
		}
	}
	return node, nil
}

// contentFromResult picks the first present source: text, translate, score, selector, nbt.
func contentFromResult(r gjson.Result) (Content, error) {
	if text := r.Get("text"); text.Exists() {
		return Literal{Text: scalar(text)}, nil
	}
	if key := r.Get("translate"); key.Exists() {
		tr := Translation{Key: scalar(key)}
		if with := r.Get("with"); with.Exists() {
			if !with.IsArray() {
				return nil, fmt.Errorf("%w: with must be an array", errors.ErrMalformedComponent)
			}
			for _, item := range with.Array() {
				arg, err := fromResult(item)
				if err != nil {
					return nil, err
				}
				tr.With = append(tr.With, arg)
			}
		}
		return tr, nil
	}
	if score := r.Get("score"); score.Exists() {
		if !score.IsObject() {
			return nil, fmt.Errorf("%w: score must be an object", errors.ErrMalformedComponent)
		}
		return Score{
			Name:      score.Get("name").String(),
			Objective: score.Get("objective").String(),
			Value:     score.Get("value").String(),
		}, nil
	}
	if selector := r.Get("selector"); selector.Exists() {
		return Selector{Pattern: scalar(selector)}, nil
	}
	if nbt := r.Get("nbt"); nbt.Exists() {
		return NBT{Raw: scalar(nbt)}, nil
	}
	return nil, nil
}

func styleFromResult(r gjson.Result) (Style, error) {
	var style Style
	if color := r.Get("color"); color.Exists() {
		if color.Type != gjson.String {
			return Style{}, fmt.Errorf("%w: color must be a string", errors.ErrMalformedComponent)
		}
		// an unknown color name is left unset and inherited
		if c, ok := ParseColor(color.String()); ok {
			style.Color = c
		}
	}
	style.Bold = flag(r, "bold")
	style.Italic = flag(r, "italic")
	style.Underlined = flag(r, "underlined")
	style.Strikethrough = flag(r, "strikethrough")
	style.Obfuscated = flag(r, "obfuscated")
	if font := r.Get("font"); font.Exists() && font.String() != "" {
		style.Font = lo.ToPtr(font.String())
	}
	return style, nil
}

func flag(r gjson.Result, name string) *bool {
	v := r.Get(name)
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	return lo.ToPtr(v.Bool())
}

// event returns the first present of the legacy camelCase key and the snake_case key.
func event(r gjson.Result, legacy, current string) (gjson.Result, bool, error) {
	ev := r.Get(legacy)
	if !ev.Exists() {
		ev = r.Get(current)
	}
	if !ev.Exists() {
		return gjson.Result{}, false, nil
	}
	if !ev.IsObject() {
		return gjson.Result{}, false, fmt.Errorf("%w: %s must be an object", errors.ErrMalformedComponent, legacy)
	}
	return ev, true, nil
}

func clickFromResult(r gjson.Result) (ClickAction, error) {
	ev, ok, err := event(r, "clickEvent", "click_event")
	if !ok {
		return nil, err
	}
	value := func(alias string) string {
		if v := ev.Get("value"); v.Exists() {
			return scalar(v)
		}
		return scalar(ev.Get(alias))
	}
	switch ev.Get("action").String() {
	case "open_url":
		return OpenURL{URL: value("url")}, nil
	case "run_command":
		return RunCommand{Command: value("command")}, nil
	case "suggest_command":
		return SuggestCommand{Command: value("command")}, nil
	case "change_page":
		page := ev.Get("value")
		if !page.Exists() {
			page = ev.Get("page")
		}
		if n := page.Int(); n > 0 {
			return ChangePage{Page: int(n)}, nil
		}
		return nil, nil
	case "copy_to_clipboard":
		return CopyToClipboard{Text: value("value")}, nil
	default:
		return nil, nil
	}
}

func hoverFromResult(r gjson.Result) (HoverAction, error) {
	ev, ok, err := event(r, "hoverEvent", "hover_event")
	if !ok {
		return nil, err
	}
	payload := ev.Get("contents")
	if !payload.Exists() {
		payload = ev.Get("value")
	}
	switch ev.Get("action").String() {
	case "show_text":
		if !payload.Exists() {
			return ShowText{Contents: Text("")}, nil
		}
		contents, err := fromResult(payload)
		if err != nil {
			return nil, err
		}
		return ShowText{Contents: contents}, nil
	case "show_item":
		return ShowItem{Raw: rawPayload(ev, payload)}, nil
	case "show_entity":
		return ShowEntity{Raw: rawPayload(ev, payload)}, nil
	default:
		return nil, nil
	}
}

// rawPayload keeps item/entity data as written; the newer format inlines it in the event.
func rawPayload(ev, payload gjson.Result) string {
	if payload.Exists() {
		return scalar(payload)
	}
	if id := ev.Get("id"); id.Exists() {
		return scalar(id)
	}
	return ""
}

// scalar returns strings unquoted and anything else as its raw JSON.
func scalar(r gjson.Result) string {
	if r.Type == gjson.String {
		return r.String()
	}
	if r.Type == gjson.Null {
		return ""
	}
	return r.Raw
}
