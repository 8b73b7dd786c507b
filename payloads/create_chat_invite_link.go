package payloads

import "github.com/tgwire/tgwire/types"

// CreateChatInviteLink creates an additional invite link for a chat. The bot
// must be an administrator with the appropriate rights; the link can later be
// revoked with RevokeChatInviteLink.
type CreateChatInviteLink struct {
	ChatID             types.Recipient      `json:"chat_id"`
	Name               types.Option[string] `json:"name,omitzero"`
	ExpireDate         types.Option[int64]  `json:"expire_date,omitzero"`
	MemberLimit        types.Option[int]    `json:"member_limit,omitzero"`
	CreatesJoinRequest types.Option[bool]   `json:"creates_join_request,omitzero"`
}

// NewCreateChatInviteLink builds the payload from its required fields.
func NewCreateChatInviteLink(chatID types.Recipient) *CreateChatInviteLink {
	return &CreateChatInviteLink{ChatID: chatID}
}

func (*CreateChatInviteLink) MethodName() string { return "createChatInviteLink" }

func (*CreateChatInviteLink) Output() types.ChatInviteLink { return types.ChatInviteLink{} }

// WithName sets a human-readable link name.
func (p *CreateChatInviteLink) WithName(name string) *CreateChatInviteLink {
	p.Name = types.Some(name)
	return p
}

// WithExpireDate sets the unix timestamp at which the link expires.
func (p *CreateChatInviteLink) WithExpireDate(ts int64) *CreateChatInviteLink {
	p.ExpireDate = types.Some(ts)
	return p
}

// WithMemberLimit caps how many members may join through the link.
func (p *CreateChatInviteLink) WithMemberLimit(n int) *CreateChatInviteLink {
	p.MemberLimit = types.Some(n)
	return p
}

// WithCreatesJoinRequest makes joining subject to administrator approval.
// Mutually exclusive with a member limit.
func (p *CreateChatInviteLink) WithCreatesJoinRequest(v bool) *CreateChatInviteLink {
	p.CreatesJoinRequest = types.Some(v)
	return p
}

// Validate checks the member limit range.
func (p *CreateChatInviteLink) Validate() error {
	if n, ok := p.MemberLimit.Get(); ok && (n < 1 || n > 99999) {
		return errMemberLimit
	}
	return nil
}
