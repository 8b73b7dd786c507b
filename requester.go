package tgwire

import (
	"github.com/tgwire/tgwire/payloads"
	"github.com/tgwire/tgwire/requests"
	"github.com/tgwire/tgwire/types"
)

// The typed method surface. Each method couples a payload with this Bot and
// returns a ready-to-send request; nothing is transmitted until a returned
// future is awaited. Optional fields are set on the request's payload:
//
//	req := bot.SendMessage(types.ChatID(42), "hi")
//	req.Payload().WithParseMode(types.ParseModeHTML)
//	msg, err := req.Send().Await(ctx)

// GetMe requests information about the bot account.
func (b *Bot) GetMe() *requests.JSON[types.User, *payloads.GetMe] {
	return requests.NewJSON[types.User](b, payloads.NewGetMe())
}

// SendMessage sends text to a chat.
func (b *Bot) SendMessage(chatID types.Recipient, text string) *requests.JSON[types.Message, *payloads.SendMessage] {
	return requests.NewJSON[types.Message](b, payloads.NewSendMessage(chatID, text))
}

// ForwardMessage forwards a message between chats.
func (b *Bot) ForwardMessage(chatID, fromChatID types.Recipient, messageID int) *requests.JSON[types.Message, *payloads.ForwardMessage] {
	return requests.NewJSON[types.Message](b, payloads.NewForwardMessage(chatID, fromChatID, messageID))
}

// CopyMessage copies a message between chats without a link back.
func (b *Bot) CopyMessage(chatID, fromChatID types.Recipient, messageID int) *requests.JSON[types.MessageID, *payloads.CopyMessage] {
	return requests.NewJSON[types.MessageID](b, payloads.NewCopyMessage(chatID, fromChatID, messageID))
}

// DeleteMessage deletes a message.
func (b *Bot) DeleteMessage(chatID types.Recipient, messageID int) *requests.JSON[bool, *payloads.DeleteMessage] {
	return requests.NewJSON[bool](b, payloads.NewDeleteMessage(chatID, messageID))
}

// BanChatMember bans a user from a chat.
func (b *Bot) BanChatMember(chatID types.Recipient, userID int64) *requests.JSON[bool, *payloads.BanChatMember] {
	return requests.NewJSON[bool](b, payloads.NewBanChatMember(chatID, userID))
}

// CreateChatInviteLink creates an additional invite link for a chat.
func (b *Bot) CreateChatInviteLink(chatID types.Recipient) *requests.JSON[types.ChatInviteLink, *payloads.CreateChatInviteLink] {
	return requests.NewJSON[types.ChatInviteLink](b, payloads.NewCreateChatInviteLink(chatID))
}

// RevokeChatInviteLink revokes an invite link created by the bot.
func (b *Bot) RevokeChatInviteLink(chatID types.Recipient, inviteLink string) *requests.JSON[types.ChatInviteLink, *payloads.RevokeChatInviteLink] {
	return requests.NewJSON[types.ChatInviteLink](b, payloads.NewRevokeChatInviteLink(chatID, inviteLink))
}

// GetUpdates long-polls for incoming updates.
func (b *Bot) GetUpdates() *requests.JSON[[]types.Update, *payloads.GetUpdates] {
	return requests.NewJSON[[]types.Update](b, payloads.NewGetUpdates())
}

// SetMyCommands replaces the bot's advertised command list.
func (b *Bot) SetMyCommands(commands []types.BotCommand) *requests.JSON[bool, *payloads.SetMyCommands] {
	return requests.NewJSON[bool](b, payloads.NewSetMyCommands(commands))
}
