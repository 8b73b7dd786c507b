package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Recipient identifies the target chat of a request. On the wire it is either
// a numeric chat identifier or a public channel username in the form
// "@channelusername"; the two are mutually exclusive.
type Recipient struct {
	id       int64
	username string
}

// ChatID returns a Recipient addressing a chat by its numeric identifier.
func ChatID(id int64) Recipient {
	return Recipient{id: id}
}

// Username returns a Recipient addressing a public channel by username. The
// username must start with '@' and have a non-empty remainder; malformed
// usernames are rejected here rather than at send time.
func Username(name string) (Recipient, error) {
	if !strings.HasPrefix(name, "@") || len(name) < 2 {
		return Recipient{}, fmt.Errorf("chat username must be of the form @channelusername, got %q", name)
	}
	return Recipient{username: name}, nil
}

// IsChannel reports whether the Recipient addresses a channel by username.
func (r Recipient) IsChannel() bool { return r.username != "" }

// ID returns the numeric chat identifier, or 0 for a username Recipient.
func (r Recipient) ID() int64 { return r.id }

func (r Recipient) String() string {
	if r.username != "" {
		return r.username
	}
	return strconv.FormatInt(r.id, 10)
}

func (r Recipient) MarshalJSON() ([]byte, error) {
	if r.username != "" {
		return json.Marshal(r.username)
	}
	return json.Marshal(r.id)
}

func (r *Recipient) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		rec, err := Username(name)
		if err != nil {
			return err
		}
		*r = rec
		return nil
	}
	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("recipient must be a chat id or @username: %w", err)
	}
	*r = Recipient{id: id}
	return nil
}
