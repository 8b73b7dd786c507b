package payloads

import "github.com/tgwire/tgwire/types"

// SetMyCommands replaces the list of commands the bot advertises.
type SetMyCommands struct {
	Commands     []types.BotCommand   `json:"commands"`
	LanguageCode types.Option[string] `json:"language_code,omitzero"`
}

// NewSetMyCommands builds the payload from its required fields.
func NewSetMyCommands(commands []types.BotCommand) *SetMyCommands {
	return &SetMyCommands{Commands: commands}
}

func (*SetMyCommands) MethodName() string { return "setMyCommands" }

func (*SetMyCommands) Output() bool { return false }

// WithLanguageCode scopes the command list to users of one language.
func (p *SetMyCommands) WithLanguageCode(code string) *SetMyCommands {
	p.LanguageCode = types.Some(code)
	return p
}
