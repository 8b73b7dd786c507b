package payloads

import "github.com/tgwire/tgwire/types"

// CopyMessage copies a message without a link back to the original. Returns
// only the new message id.
type CopyMessage struct {
	ChatID              types.Recipient               `json:"chat_id"`
	FromChatID          types.Recipient               `json:"from_chat_id"`
	MessageID           int                           `json:"message_id"`
	Caption             types.Option[string]          `json:"caption,omitzero"`
	ParseMode           types.Option[types.ParseMode] `json:"parse_mode,omitzero"`
	DisableNotification types.Option[bool]            `json:"disable_notification,omitzero"`
	ProtectContent      types.Option[bool]            `json:"protect_content,omitzero"`
	ReplyToMessageID    types.Option[int]             `json:"reply_to_message_id,omitzero"`
}

// NewCopyMessage builds the payload from its required fields.
func NewCopyMessage(chatID, fromChatID types.Recipient, messageID int) *CopyMessage {
	return &CopyMessage{ChatID: chatID, FromChatID: fromChatID, MessageID: messageID}
}

func (*CopyMessage) MethodName() string { return "copyMessage" }

func (*CopyMessage) Output() types.MessageID { return types.MessageID{} }

// WithCaption replaces the caption of the copied message.
func (p *CopyMessage) WithCaption(caption string) *CopyMessage {
	p.Caption = types.Some(caption)
	return p
}

// WithParseMode sets how the new caption is parsed.
func (p *CopyMessage) WithParseMode(mode types.ParseMode) *CopyMessage {
	p.ParseMode = types.Some(mode)
	return p
}

// WithDisableNotification copies the message silently.
func (p *CopyMessage) WithDisableNotification(v bool) *CopyMessage {
	p.DisableNotification = types.Some(v)
	return p
}

// WithProtectContent protects the copied message from forwarding and saving.
func (p *CopyMessage) WithProtectContent(v bool) *CopyMessage {
	p.ProtectContent = types.Some(v)
	return p
}

// WithReplyToMessageID makes the copy a reply.
func (p *CopyMessage) WithReplyToMessageID(id int) *CopyMessage {
	p.ReplyToMessageID = types.Some(id)
	return p
}
