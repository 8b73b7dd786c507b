package payloads

import "github.com/tgwire/tgwire/types"

// ForwardMessage forwards a message from one chat to another.
type ForwardMessage struct {
	ChatID              types.Recipient    `json:"chat_id"`
	FromChatID          types.Recipient    `json:"from_chat_id"`
	MessageID           int                `json:"message_id"`
	DisableNotification types.Option[bool] `json:"disable_notification,omitzero"`
	ProtectContent      types.Option[bool] `json:"protect_content,omitzero"`
}

// NewForwardMessage builds the payload from its required fields.
func NewForwardMessage(chatID, fromChatID types.Recipient, messageID int) *ForwardMessage {
	return &ForwardMessage{ChatID: chatID, FromChatID: fromChatID, MessageID: messageID}
}

func (*ForwardMessage) MethodName() string { return "forwardMessage" }

func (*ForwardMessage) Output() types.Message { return types.Message{} }

// WithDisableNotification forwards the message silently.
func (p *ForwardMessage) WithDisableNotification(v bool) *ForwardMessage {
	p.DisableNotification = types.Some(v)
	return p
}

// WithProtectContent protects the forwarded message from further forwarding.
func (p *ForwardMessage) WithProtectContent(v bool) *ForwardMessage {
	p.ProtectContent = types.Some(v)
	return p
}
