// Package types holds the value types exchanged with the Bot API: results
// decoded from responses, identifier unions, and the Option presence wrapper
// used by request payloads.
package types

// ParseMode selects how message text entities are parsed server-side.
type ParseMode string

const (
	ParseModeMarkdownV2 ParseMode = "MarkdownV2"
	ParseModeHTML       ParseMode = "HTML"
	ParseModeMarkdown   ParseMode = "Markdown"
)

// User represents a bot or user account.
type User struct {
	ID                      int64  `json:"id"`
	IsBot                   bool   `json:"is_bot"`
	FirstName               string `json:"first_name"`
	LastName                string `json:"last_name,omitzero"`
	Username                string `json:"username,omitzero"`
	LanguageCode            string `json:"language_code,omitzero"`
	CanJoinGroups           bool   `json:"can_join_groups,omitzero"`
	CanReadAllGroupMessages bool   `json:"can_read_all_group_messages,omitzero"`
	SupportsInlineQueries   bool   `json:"supports_inline_queries,omitzero"`
}

// Chat represents a chat the bot participates in.
type Chat struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title,omitzero"`
	Username  string `json:"username,omitzero"`
	FirstName string `json:"first_name,omitzero"`
	LastName  string `json:"last_name,omitzero"`
}

// Message is a message sent to or by the bot.
type Message struct {
	MessageID      int      `json:"message_id"`
	From           *User    `json:"from,omitempty"`
	Chat           Chat     `json:"chat"`
	Date           int64    `json:"date"`
	Text           string   `json:"text,omitzero"`
	ReplyToMessage *Message `json:"reply_to_message,omitempty"`
	EditDate       int64    `json:"edit_date,omitzero"`
}

// MessageID is the bare message identifier returned by copy operations.
type MessageID struct {
	MessageID int `json:"message_id"`
}

// ChatInviteLink is an additional invite link for a chat.
type ChatInviteLink struct {
	InviteLink              string `json:"invite_link"`
	Creator                 User   `json:"creator"`
	CreatesJoinRequest      bool   `json:"creates_join_request"`
	IsPrimary               bool   `json:"is_primary"`
	IsRevoked               bool   `json:"is_revoked"`
	Name                    string `json:"name,omitzero"`
	ExpireDate              int64  `json:"expire_date,omitzero"`
	MemberLimit             int    `json:"member_limit,omitzero"`
	PendingJoinRequestCount int    `json:"pending_join_request_count,omitzero"`
}

// Update is one incoming event delivered by long polling.
type Update struct {
	UpdateID          int64    `json:"update_id"`
	Message           *Message `json:"message,omitempty"`
	EditedMessage     *Message `json:"edited_message,omitempty"`
	ChannelPost       *Message `json:"channel_post,omitempty"`
	EditedChannelPost *Message `json:"edited_channel_post,omitempty"`
}

// BotCommand describes one command the bot advertises to clients.
type BotCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}
