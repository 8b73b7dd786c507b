package payloads

import "errors"

var (
	errEmptyText       = errors.New("message text must not be empty")
	errMemberLimit     = errors.New("member_limit must be in 1..99999")
	errUpdatesLimit    = errors.New("limit must be in 1..100")
	errNegativeTimeout = errors.New("timeout must not be negative")
)
