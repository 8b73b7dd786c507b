package types

import (
	"encoding/json"
	"testing"
)

func TestChatIDEncodesAsNumber(t *testing.T) {
	data, err := json.Marshal(ChatID(42))
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(data) != "42" {
		t.Fatalf("encoded %s, want 42", data)
	}
}

func TestUsernameValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "@channelusername", false},
		{"missing at", "channelusername", true},
		{"bare at", "@", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Username(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Username(%q) accepted", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Username(%q) failed: %v", tt.input, err)
			}
			if !r.IsChannel() {
				t.Fatal("username Recipient does not report IsChannel")
			}
			data, err := json.Marshal(r)
			if err != nil {
				t.Fatalf("Marshal() failed: %v", err)
			}
			if string(data) != `"`+tt.input+`"` {
				t.Fatalf("encoded %s, want %q", data, tt.input)
			}
		})
	}
}

func TestRecipientUnmarshal(t *testing.T) {
	var r Recipient
	if err := json.Unmarshal([]byte("1234"), &r); err != nil {
		t.Fatalf("Unmarshal(1234) failed: %v", err)
	}
	if r.ID() != 1234 || r.IsChannel() {
		t.Fatalf("got %v, want numeric 1234", r)
	}

	if err := json.Unmarshal([]byte(`"@chan"`), &r); err != nil {
		t.Fatalf("Unmarshal(@chan) failed: %v", err)
	}
	if !r.IsChannel() || r.String() != "@chan" {
		t.Fatalf("got %v, want @chan", r)
	}

	if err := json.Unmarshal([]byte(`"chan"`), &r); err == nil {
		t.Fatal("malformed username accepted")
	}
}
