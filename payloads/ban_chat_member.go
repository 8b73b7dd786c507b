package payloads

import "github.com/tgwire/tgwire/types"

// BanChatMember bans a user from a group, supergroup, or channel.
type BanChatMember struct {
	ChatID         types.Recipient     `json:"chat_id"`
	UserID         int64               `json:"user_id"`
	UntilDate      types.Option[int64] `json:"until_date,omitzero"`
	RevokeMessages types.Option[bool]  `json:"revoke_messages,omitzero"`
}

// NewBanChatMember builds the payload from its required fields.
func NewBanChatMember(chatID types.Recipient, userID int64) *BanChatMember {
	return &BanChatMember{ChatID: chatID, UserID: userID}
}

func (*BanChatMember) MethodName() string { return "banChatMember" }

func (*BanChatMember) Output() bool { return false }

// WithUntilDate sets the unix timestamp until which the user is banned.
// Bans shorter than 30 seconds or longer than 366 days are forever.
func (p *BanChatMember) WithUntilDate(ts int64) *BanChatMember {
	p.UntilDate = types.Some(ts)
	return p
}

// WithRevokeMessages also deletes all messages from the user in the chat.
func (p *BanChatMember) WithRevokeMessages(v bool) *BanChatMember {
	p.RevokeMessages = types.Some(v)
	return p
}
