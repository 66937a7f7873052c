package httpapi

import (
	"chat-view/domain"
	"chat-view/domain/textcomponent"
	"chat-view/errors"
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

var validate = validator.New()

// MessageDTO is a chat message as found on the wire. Content is kept raw because the
// source sends either a JSON string or a JSON component.
type MessageDTO struct {
	ID        int64  `validate:"gt=0"`
	Sender    string `validate:"required"`
	Timestamp int64  `validate:"gte=0"`
	Source    string
	UUID      string
	Content   gjson.Result `validate:"-"`
}

func messageDTOFromResult(r gjson.Result) MessageDTO {
	return MessageDTO{
		ID:        r.Get("id").Int(),
		Sender:    strings.TrimSpace(r.Get("sender").String()),
		Timestamp: r.Get("timestamp").Int(),
		Source:    r.Get("source").String(),
		UUID:      r.Get("uuid").String(),
		Content:   r.Get("content"),
	}
}

// ToDomain validates the DTO and converts it. An unparsable uuid only drops the ref.
func (d MessageDTO) ToDomain() (domain.ChatMessage, error) {
	if err := validate.Struct(d); err != nil {
		return domain.ChatMessage{}, fmt.Errorf("%w: %w", errors.ErrInvalidMessage, err)
	}
	m := domain.ChatMessage{
		ID:       domain.MessageID(d.ID),
		SenderID: d.Sender,
		At:       time.Unix(d.Timestamp, 0).UTC(),
		Content:  decodeContent(d.Content),
		Origin:   domain.ParseOrigin(d.Source),
	}
	if d.UUID != "" {
		if ref, err := uuid.Parse(d.UUID); err == nil {
			m.ExternalRef = lo.ToPtr(ref)
		}
	}
	return m, nil
}

// decodeContent maps the wire content to PlainText or StructuredText. A string
// holding a component is structured; a malformed component degrades to its raw text.
func decodeContent(r gjson.Result) domain.Content {
	switch {
	case r.Type == gjson.String:
		c := textcomponent.ParseString(r.Str)
		if text, ok := c.(textcomponent.Text); ok {
			return domain.PlainText(text)
		}
		return domain.StructuredText{Component: c}
	case r.IsObject(), r.IsArray():
		c, err := textcomponent.Parse([]byte(r.Raw))
		if err != nil {
			return domain.PlainText(r.Raw)
		}
		return domain.StructuredText{Component: c}
	case !r.Exists(), r.Type == gjson.Null:
		return domain.PlainText("")
	default:
		return domain.PlainText(r.Raw)
	}
}

// decodeMessages reads the "messages" array of body. Invalid entries are logged and
// skipped. The result is ascending by ID whatever the wire order.
func decodeMessages(log *slog.Logger, body []byte) []domain.ChatMessage {
	items := gjson.GetBytes(body, "messages").Array()
	messages := make([]domain.ChatMessage, 0, len(items))
	for _, item := range items {
		m, err := messageDTOFromResult(item).ToDomain()
		if err != nil {
			log.Warn("Dropping invalid message from chat source", "raw", item.Raw, "error", err)
			continue
		}
		messages = append(messages, m)
	}
	slices.SortStableFunc(messages, func(a, b domain.ChatMessage) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return messages
}

// decodePresence reads the "online" object of body, nil when absent.
func decodePresence(body []byte) *domain.PresenceSnapshot {
	online := gjson.GetBytes(body, "online")
	if !online.IsObject() {
		return nil
	}
	names := func(key string) []string {
		return lo.Map(online.Get(key).Array(), func(r gjson.Result, _ int) string {
			return strings.TrimSpace(r.String())
		})
	}
	snapshot := domain.NewPresenceSnapshot(names("game"), names("web"), names("bot"))
	return &snapshot
}
