// Package httpapi implements the polling protocol of the chat source over HTTP.
package httpapi

import (
	"chat-view/contract"
	"chat-view/domain"
	"chat-view/errors"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	messagesPath    = "/messages"
	newMessagesPath = "/messages/new"
	statusPath      = "/status"
)

type Client struct {
	log  *slog.Logger
	http *resty.Client
}

var _ contract.ChatAPI = (*Client)(nil)

// NewClient builds a client for baseURL. An empty token sends no Authorization header.
func NewClient(log *slog.Logger, baseURL, token string, timeout time.Duration) *Client {
	http := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{log: log})
	if token != "" {
		http.SetAuthToken(token)
	}
	return &Client{log: log, http: http}
}

func (c *Client) GetMessages(ctx context.Context, query contract.MessagesQuery) ([]domain.ChatMessage, error) {
	params := map[string]string{"limit": strconv.Itoa(query.Limit)}
	if query.BeforeID != nil {
		params["before_id"] = strconv.FormatInt(int64(*query.BeforeID), 10)
	}
	if query.Offset != nil {
		params["offset"] = strconv.Itoa(*query.Offset)
	}
	body, err := c.get(ctx, messagesPath, params)
	if err != nil {
		return nil, err
	}
	return decodeMessages(c.log, body), nil
}

func (c *Client) GetNewMessages(ctx context.Context, afterID domain.MessageID, requesterID string) (contract.NewMessages, error) {
	body, err := c.get(ctx, newMessagesPath, map[string]string{
		"after_id":  strconv.FormatInt(int64(afterID), 10),
		"requester": requesterID,
	})
	if err != nil {
		return contract.NewMessages{}, err
	}
	return contract.NewMessages{
		Messages: decodeMessages(c.log, body),
		Presence: decodePresence(body),
	}, nil
}

func (c *Client) GetPresence(ctx context.Context) (domain.PresenceSnapshot, error) {
	body, err := c.get(ctx, statusPath, nil)
	if err != nil {
		return domain.PresenceSnapshot{}, err
	}
	snapshot := decodePresence(body)
	if snapshot == nil {
		return domain.NewPresenceSnapshot(nil, nil, nil), nil
	}
	return *snapshot, nil
}

// SendMessage posts content. A reply with success false is ErrSendRejected.
func (c *Client) SendMessage(ctx context.Context, content, senderID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"content": content, "sender": senderID}).
		Post(messagesPath)
	if err != nil {
		return fmt.Errorf("POST %s: %w", messagesPath, err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("%w: POST %s returned %d", errors.ErrUnexpectedStatus, messagesPath, resp.StatusCode())
	}
	reply := gjson.ParseBytes(resp.Body())
	if !reply.Get("success").Bool() {
		if reason := reply.Get("error").String(); reason != "" {
			return fmt.Errorf("%w: %s", errors.ErrSendRejected, reason)
		}
		return errors.ErrSendRejected
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: GET %s returned %d", errors.ErrUnexpectedStatus, path, resp.StatusCode())
	}
	return resp.Body(), nil
}

// restyLogger routes resty's own messages to slog.
type restyLogger struct {
	log *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "resty")
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "resty")
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "resty")
}
