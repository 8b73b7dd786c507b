package payloads

import "github.com/tgwire/tgwire/types"

// RevokeChatInviteLink revokes an invite link created by the bot. If the
// primary link is revoked, a new one is generated automatically.
type RevokeChatInviteLink struct {
	ChatID     types.Recipient `json:"chat_id"`
	InviteLink string          `json:"invite_link"`
}

// NewRevokeChatInviteLink builds the payload from its required fields.
func NewRevokeChatInviteLink(chatID types.Recipient, inviteLink string) *RevokeChatInviteLink {
	return &RevokeChatInviteLink{ChatID: chatID, InviteLink: inviteLink}
}

func (*RevokeChatInviteLink) MethodName() string { return "revokeChatInviteLink" }

func (*RevokeChatInviteLink) Output() types.ChatInviteLink { return types.ChatInviteLink{} }
