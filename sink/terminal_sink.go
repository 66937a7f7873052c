package sink

import (
	"chat-view/domain"
	"chat-view/domain/event"
	"chat-view/domain/textcomponent"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/gookit/color"
)

const timeLayout = "15:04:05"

var (
	systemStyle = color.New(color.FgGray, color.OpItalic)
	noticeStyle = color.New(color.FgDarkGray)
	linkStyle   = color.New(color.FgCyan)
	originStyle = map[domain.Origin]color.Style{
		domain.OriginGame: color.New(color.FgGreen),
		domain.OriginWeb:  color.New(color.FgBlue),
	}
)

// TerminalSink prints the chat view on a terminal. It remembers the interactive
// segments of the last message that had any, so a prompt can activate them by number.
type TerminalSink struct {
	mu        sync.Mutex
	out       io.Writer
	log       *slog.Logger
	actions   textcomponent.Actions
	clickable []textcomponent.Segment
	presence  domain.PresenceView
}

func NewTerminalSink(out io.Writer, log *slog.Logger, actions textcomponent.Actions) *TerminalSink {
	return &TerminalSink{out: out, log: log, actions: actions}
}

func (s *TerminalSink) Consume(_ context.Context, e event.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch evt := e.(type) {
	case event.HistoryLoaded:
		if len(evt.Messages) == 0 {
			s.clickable = nil
			return s.notice("no messages yet")
		}
		if evt.HasMore {
			if err := s.notice("older messages available, type /more"); err != nil {
				return err
			}
		}
		return s.printAll(evt.Messages)
	case event.MessagesAppended:
		return s.printAll(evt.Messages)
	case event.HistoryPrepended:
		if err := s.notice(fmt.Sprintf("%d older messages", len(evt.Messages))); err != nil {
			return err
		}
		if err := s.printAll(evt.Messages); err != nil {
			return err
		}
		if !evt.HasMore {
			return s.notice("start of history")
		}
		return nil
	case event.PresenceChanged:
		changed := summary(evt.View) != summary(s.presence)
		s.presence = evt.View
		if changed {
			return s.notice(summary(evt.View))
		}
		return nil
	default:
		s.log.Debug(fmt.Sprintf("Not implemented event : %v", evt))
		return nil
	}
}

// Presence returns the last presence view received.
func (s *TerminalSink) Presence() domain.PresenceView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presence
}

// Activate runs the click action of the n-th interactive segment, counting from 1.
func (s *TerminalSink) Activate(n int) error {
	s.mu.Lock()
	if n < 1 || n > len(s.clickable) {
		count := len(s.clickable)
		s.mu.Unlock()
		return fmt.Errorf("no clickable element %d (%d available)", n, count)
	}
	segment := s.clickable[n-1]
	s.mu.Unlock()

	// outside the lock: a suggest action may write to the prompt
	segment.Activate()
	return nil
}

func (s *TerminalSink) printAll(messages []domain.ChatMessage) error {
	for _, m := range messages {
		if err := s.print(m); err != nil {
			return err
		}
	}
	return nil
}

func (s *TerminalSink) print(m domain.ChatMessage) error {
	segments := m.Segments(s.actions)
	interactive := make([]textcomponent.Segment, 0)
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(RenderSegment(seg))
		// empty wrappers carry their click down to children, which get the number
		if seg.Interactive() && seg.Text != "" {
			interactive = append(interactive, seg)
			b.WriteString(linkStyle.Sprintf("[%d]", len(interactive)))
		}
	}
	if len(interactive) > 0 {
		s.clickable = interactive
	}

	stamp := noticeStyle.Sprint(m.At.Local().Format(timeLayout))
	var line string
	if m.IsSystem() {
		line = fmt.Sprintf("%s %s\n", stamp, systemStyle.Sprint("* ")+b.String())
	} else {
		sender := m.SenderID
		if st, ok := originStyle[m.Origin]; ok {
			sender = st.Sprint(sender)
		}
		line = fmt.Sprintf("%s <%s> %s\n", stamp, sender, b.String())
	}
	_, err := io.WriteString(s.out, line)
	return err
}

func (s *TerminalSink) notice(text string) error {
	_, err := io.WriteString(s.out, noticeStyle.Sprintf("-- %s --", text)+"\n")
	return err
}

// RenderSegment prints a segment with its effective color and decorations.
func RenderSegment(seg textcomponent.Segment) string {
	opts := make([]color.Color, 0, 4)
	if seg.Style.Bold {
		opts = append(opts, color.OpBold)
	}
	if seg.Style.Italic {
		opts = append(opts, color.OpItalic)
	}
	if seg.Style.Underlined {
		opts = append(opts, color.OpUnderscore)
	}
	if seg.Style.Strikethrough {
		opts = append(opts, color.OpStrikethrough)
	}
	if seg.Style.Color == "" {
		if len(opts) == 0 {
			return seg.Text
		}
		return color.New(opts...).Sprint(seg.Text)
	}
	return color.NewRGBStyle(color.HEX(seg.Style.Color)).AddOpts(opts...).Sprint(seg.Text)
}

// RenderSegments renders every segment and lists hover texts and click targets
// below the line, as the render command shows them.
func RenderSegments(segments []textcomponent.Segment) string {
	var b strings.Builder
	var details []string
	for _, seg := range segments {
		b.WriteString(RenderSegment(seg))
		if seg.Hover != "" {
			details = append(details, fmt.Sprintf("hover %q: %s", seg.Text, seg.Hover))
		}
		if seg.Click != nil {
			details = append(details, fmt.Sprintf("click %q: %s", seg.Text, describeClick(seg.Click)))
		}
	}
	for _, d := range details {
		b.WriteString("\n  ")
		b.WriteString(noticeStyle.Sprint(d))
	}
	return b.String()
}

func describeClick(click textcomponent.ClickAction) string {
	switch c := click.(type) {
	case textcomponent.OpenURL:
		return "open " + c.URL
	case textcomponent.RunCommand:
		return "run " + c.Command
	case textcomponent.SuggestCommand:
		return "suggest " + c.Command
	case textcomponent.ChangePage:
		return fmt.Sprintf("page %d", c.Page)
	case textcomponent.CopyToClipboard:
		return "copy " + c.Text
	default:
		return fmt.Sprintf("%T", c)
	}
}

func summary(view domain.PresenceView) string {
	return fmt.Sprintf("online %d (game %d, web %d, bot %d), recently offline %d",
		view.Online.Len(), len(view.Online.Game), len(view.Online.Web), len(view.Online.Bot), len(view.Offline))
}
