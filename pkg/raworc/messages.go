package raworc

import (
	"context"
	"net/url"
	"strconv"
)

func messagesQuery(limit *int) url.Values {
	if limit == nil {
		return nil
	}

	return url.Values{"limit": []string{strconv.Itoa(*limit)}}
}

// GetMessages returns session messages, newest last. A nil limit returns the
// server default.
func (c *Client) GetMessages(
	ctx context.Context,
	space, sessionID string,
	limit *int,
) ([]Message, error) {
	return getJSON[[]Message](ctx, c, c.sessionPath(space, sessionID)+"/messages", messagesQuery(limit))
}

// SendMessage appends a user message to a session.
func (c *Client) SendMessage(
	ctx context.Context,
	space, sessionID, content string,
) (*Message, error) {
	return postJSON[*Message](ctx, c, c.sessionPath(space, sessionID)+"/messages",
		&CreateMessageRequest{Content: content})
}

// GetMessageCount returns the number of messages in a session.
func (c *Client) GetMessageCount(
	ctx context.Context,
	space, sessionID string,
) (*MessageCount, error) {
	return getJSON[*MessageCount](ctx, c, c.sessionPath(space, sessionID)+"/messages/count", nil)
}

// ClearMessages deletes every message in a session.
func (c *Client) ClearMessages(ctx context.Context, space, sessionID string) error {
	return deleteReq(ctx, c, c.sessionPath(space, sessionID)+"/messages")
}

// GetGlobalMessages returns messages of a session addressed by ID only.
func (c *Client) GetGlobalMessages(
	ctx context.Context,
	sessionID string,
	limit *int,
) ([]Message, error) {
	return getJSON[[]Message](ctx, c, "sessions/"+sessionID+"/messages", messagesQuery(limit))
}

// SendGlobalMessage appends a message to a session addressed by ID only.
func (c *Client) SendGlobalMessage(
	ctx context.Context,
	sessionID, content string,
) (*Message, error) {
	return postJSON[*Message](ctx, c, "sessions/"+sessionID+"/messages",
		&CreateMessageRequest{Content: content})
}

// GetGlobalMessageCount counts messages of a session addressed by ID only.
func (c *Client) GetGlobalMessageCount(ctx context.Context, sessionID string) (*MessageCount, error) {
	return getJSON[*MessageCount](ctx, c, "sessions/"+sessionID+"/messages/count", nil)
}

// ClearGlobalMessages clears messages of a session addressed by ID only.
func (c *Client) ClearGlobalMessages(ctx context.Context, sessionID string) error {
	return deleteReq(ctx, c, "sessions/"+sessionID+"/messages")
}
