package payloads

import "github.com/tgwire/tgwire/types"

// DeleteMessage deletes a message. The API answers with a bare true on
// success.
type DeleteMessage struct {
	ChatID    types.Recipient `json:"chat_id"`
	MessageID int             `json:"message_id"`
}

// NewDeleteMessage builds the payload from its required fields.
func NewDeleteMessage(chatID types.Recipient, messageID int) *DeleteMessage {
	return &DeleteMessage{ChatID: chatID, MessageID: messageID}
}

func (*DeleteMessage) MethodName() string { return "deleteMessage" }

func (*DeleteMessage) Output() bool { return false }
