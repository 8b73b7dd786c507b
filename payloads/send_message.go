package payloads

import "github.com/tgwire/tgwire/types"

// SendMessage sends a text message to a chat.
type SendMessage struct {
	ChatID                   types.Recipient               `json:"chat_id"`
	Text                     string                        `json:"text"`
	ParseMode                types.Option[types.ParseMode] `json:"parse_mode,omitzero"`
	DisableWebPagePreview    types.Option[bool]            `json:"disable_web_page_preview,omitzero"`
	DisableNotification      types.Option[bool]            `json:"disable_notification,omitzero"`
	ProtectContent           types.Option[bool]            `json:"protect_content,omitzero"`
	ReplyToMessageID         types.Option[int]             `json:"reply_to_message_id,omitzero"`
	AllowSendingWithoutReply types.Option[bool]            `json:"allow_sending_without_reply,omitzero"`
}

// NewSendMessage builds the payload from its required fields.
func NewSendMessage(chatID types.Recipient, text string) *SendMessage {
	return &SendMessage{ChatID: chatID, Text: text}
}

func (*SendMessage) MethodName() string { return "sendMessage" }

func (*SendMessage) Output() types.Message { return types.Message{} }

// WithParseMode sets how text entities are parsed.
func (p *SendMessage) WithParseMode(mode types.ParseMode) *SendMessage {
	p.ParseMode = types.Some(mode)
	return p
}

// WithDisableWebPagePreview disables link previews for this message.
func (p *SendMessage) WithDisableWebPagePreview(v bool) *SendMessage {
	p.DisableWebPagePreview = types.Some(v)
	return p
}

// WithDisableNotification sends the message silently.
func (p *SendMessage) WithDisableNotification(v bool) *SendMessage {
	p.DisableNotification = types.Some(v)
	return p
}

// WithProtectContent protects the sent message from forwarding and saving.
func (p *SendMessage) WithProtectContent(v bool) *SendMessage {
	p.ProtectContent = types.Some(v)
	return p
}

// WithReplyToMessageID makes the message a reply.
func (p *SendMessage) WithReplyToMessageID(id int) *SendMessage {
	p.ReplyToMessageID = types.Some(id)
	return p
}

// WithAllowSendingWithoutReply sends the message even if the replied-to
// message is gone.
func (p *SendMessage) WithAllowSendingWithoutReply(v bool) *SendMessage {
	p.AllowSendingWithoutReply = types.Some(v)
	return p
}

// Validate rejects empty message text before the payload is encoded.
func (p *SendMessage) Validate() error {
	if p.Text == "" {
		return errEmptyText
	}
	return nil
}
