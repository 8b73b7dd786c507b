package payloads

import "github.com/tgwire/tgwire/types"

// GetUpdates long-polls for incoming updates.
type GetUpdates struct {
	Offset         types.Option[int64]    `json:"offset,omitzero"`
	Limit          types.Option[int]      `json:"limit,omitzero"`
	Timeout        types.Option[int]      `json:"timeout,omitzero"`
	AllowedUpdates types.Option[[]string] `json:"allowed_updates,omitzero"`
}

// NewGetUpdates builds the payload. All fields are optional.
func NewGetUpdates() *GetUpdates { return &GetUpdates{} }

func (*GetUpdates) MethodName() string { return "getUpdates" }

func (*GetUpdates) Output() []types.Update { return nil }

// WithOffset sets the identifier of the first update to return. Passing the
// highest seen update id plus one confirms everything before it.
func (p *GetUpdates) WithOffset(offset int64) *GetUpdates {
	p.Offset = types.Some(offset)
	return p
}

// WithLimit caps the number of updates returned per poll.
func (p *GetUpdates) WithLimit(n int) *GetUpdates {
	p.Limit = types.Some(n)
	return p
}

// WithTimeout sets the long-poll timeout in seconds. Zero means short
// polling.
func (p *GetUpdates) WithTimeout(seconds int) *GetUpdates {
	p.Timeout = types.Some(seconds)
	return p
}

// WithAllowedUpdates restricts the update kinds delivered.
func (p *GetUpdates) WithAllowedUpdates(kinds ...string) *GetUpdates {
	p.AllowedUpdates = types.Some(kinds)
	return p
}

// Validate checks the poll limit and timeout ranges.
func (p *GetUpdates) Validate() error {
	if n, ok := p.Limit.Get(); ok && (n < 1 || n > 100) {
		return errUpdatesLimit
	}
	if t, ok := p.Timeout.Get(); ok && t < 0 {
		return errNegativeTimeout
	}
	return nil
}
