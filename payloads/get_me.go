package payloads

import "github.com/tgwire/tgwire/types"

// GetMe requests basic information about the bot account.
type GetMe struct{}

// NewGetMe builds the payload. The method has no fields.
func NewGetMe() *GetMe { return &GetMe{} }

func (*GetMe) MethodName() string { return "getMe" }

func (*GetMe) Output() types.User { return types.User{} }
