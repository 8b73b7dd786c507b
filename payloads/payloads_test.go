package payloads

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/tgwire/tgwire/types"
)

func TestConstructorSetsRequiredLeavesOptionalUnset(t *testing.T) {
	p := NewCreateChatInviteLink(types.ChatID(42))
	if p.ChatID != types.ChatID(42) {
		t.Fatalf("ChatID = %v, want 42", p.ChatID)
	}
	if !p.Name.IsZero() || !p.ExpireDate.IsZero() || !p.MemberLimit.IsZero() || !p.CreatesJoinRequest.IsZero() {
		t.Fatal("optional field set after construction")
	}
}

func TestSetterOrderInvariance(t *testing.T) {
	a := NewCreateChatInviteLink(types.ChatID(42)).
		WithExpireDate(1700000000).
		WithMemberLimit(10).
		WithName("team")
	b := NewCreateChatInviteLink(types.ChatID(42)).
		WithName("team").
		WithMemberLimit(10).
		WithExpireDate(1700000000)

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("setter order changed the payload: %+v vs %+v", a, b)
	}
	if *a != *b {
		t.Fatal("payloads not equal under ==")
	}
}

func TestSetterLastWriteWins(t *testing.T) {
	p := NewCreateChatInviteLink(types.ChatID(42)).
		WithMemberLimit(5).
		WithMemberLimit(7)
	if n, ok := p.MemberLimit.Get(); !ok || n != 7 {
		t.Fatalf("MemberLimit = %d, %v, want 7", n, ok)
	}
}

func TestEncodingOmitsUnsetFields(t *testing.T) {
	p := NewCreateChatInviteLink(types.ChatID(42))

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(data) != `{"chat_id":42}` {
		t.Fatalf("encoded %s, want {\"chat_id\":42}", data)
	}

	p.WithExpireDate(1700000000)
	data, err = json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(data) != `{"chat_id":42,"expire_date":1700000000}` {
		t.Fatalf("encoded %s, want {\"chat_id\":42,\"expire_date\":1700000000}", data)
	}
}

func TestChannelRecipientEncoding(t *testing.T) {
	to, err := types.Username("@mychannel")
	if err != nil {
		t.Fatalf("Username() failed: %v", err)
	}
	data, err := json.Marshal(NewSendMessage(to, "hi"))
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(data) != `{"chat_id":"@mychannel","text":"hi"}` {
		t.Fatalf("encoded %s", data)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload interface{ Validate() error }
		wantErr bool
	}{
		{"invite link ok", NewCreateChatInviteLink(types.ChatID(1)).WithMemberLimit(99999), false},
		{"invite link limit too low", NewCreateChatInviteLink(types.ChatID(1)).WithMemberLimit(0), true},
		{"invite link limit too high", NewCreateChatInviteLink(types.ChatID(1)).WithMemberLimit(100000), true},
		{"send message ok", NewSendMessage(types.ChatID(1), "hi"), false},
		{"send message empty text", NewSendMessage(types.ChatID(1), ""), true},
		{"get updates ok", NewGetUpdates().WithLimit(100), false},
		{"get updates limit out of range", NewGetUpdates().WithLimit(101), true},
		{"get updates negative timeout", NewGetUpdates().WithTimeout(-1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("Validate() accepted invalid payload")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate() failed: %v", err)
			}
		})
	}
}

func TestGetUpdatesAllFieldsOptional(t *testing.T) {
	data, err := json.Marshal(NewGetUpdates())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(data) != "{}" {
		t.Fatalf("encoded %s, want {}", data)
	}
}
