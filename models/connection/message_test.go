package connection

import (
	"encoding/json"
	"testing"

	mb "github.com/saeidalz13/battleship-peer/models/battleship"
)

func TestEnvelopeDecode(t *testing.T) {
	sunk := mb.Coordinates{Row: 0, Col: 0}
	winner := "127.0.0.1:7000"

	tests := []struct {
		name        string
		msg         PeerMessage
		expected    PeerMessage
		expectedErr bool
	}{
		{
			name:     "join request",
			msg:      JoinRequest{PlayerAddress: "127.0.0.1:7001", PlayerName: "bob"},
			expected: &JoinRequest{PlayerAddress: "127.0.0.1:7001", PlayerName: "bob"},
		},
		{
			name: "reveal result",
			msg: RevealResult{
				DefenderAddress: "127.0.0.1:7001",
				Valid:           true,
				Hit:             true,
				Sunk:            true,
				SunkShipCells:   []mb.Coordinates{sunk},
				NextAttacker:    winner,
				GameOver:        true,
				WinnerAddress:   &winner,
			},
			expected: &RevealResult{
				DefenderAddress: "127.0.0.1:7001",
				Valid:           true,
				Hit:             true,
				Sunk:            true,
				SunkShipCells:   []mb.Coordinates{sunk},
				NextAttacker:    winner,
				GameOver:        true,
				WinnerAddress:   &winner,
			},
		},
		{
			name:     "room sync",
			msg:      RoomSync{Room: *mb.NewRoom("room-1", winner, "alice")},
			expected: &RoomSync{Room: *mb.NewRoom("room-1", winner, "alice")},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			env, err := NewEnvelope(winner, test.msg)
			if err != nil {
				t.Fatal(err)
			}
			if env.Code != test.msg.Code() || env.Sender != winner {
				t.Fatalf("unexpected envelope header: %d %s", env.Code, env.Sender)
			}

			// Through the wire and back
			data, err := json.Marshal(env)
			if err != nil {
				t.Fatal(err)
			}
			var received Envelope
			if err := json.Unmarshal(data, &received); err != nil {
				t.Fatal(err)
			}

			msg, err := received.Decode()
			if err != nil {
				t.Fatal(err)
			}
			got, _ := json.Marshal(msg)
			want, _ := json.Marshal(test.expected)
			if string(got) != string(want) {
				t.Fatalf("expected: %s\tgot: %s", want, got)
			}
			if msg.Code() != test.msg.Code() {
				t.Fatalf("expected code: %d\tgot: %d", test.msg.Code(), msg.Code())
			}
		})
	}
}

func TestEnvelopeDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		env  Envelope
	}{
		{name: "unknown code", env: Envelope{Code: 42, Payload: json.RawMessage(`{}`)}},
		{name: "client code", env: Envelope{Code: CodeCreateRoom, Payload: json.RawMessage(`{}`)}},
		{name: "empty payload", env: Envelope{Code: CodeJoinRequest}},
		{name: "malformed payload", env: Envelope{Code: CodeAttackRequest, Payload: json.RawMessage(`{"row": "a"}`)}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := test.env.Decode(); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestEveryPeerCodeDecodes(t *testing.T) {
	for code := CodeJoinRequest; code <= CodeMatchmakingFound; code++ {
		msg, err := Envelope{Code: code, Payload: json.RawMessage(`{}`)}.Decode()
		if err != nil {
			t.Fatalf("code %d: %v", code, err)
		}
		if msg.Code() != code {
			t.Fatalf("code %d decoded as %d", code, msg.Code())
		}
	}
}

func TestFetchCode(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		expectedCode uint8
		expectedOk   bool
	}{
		{name: "code present", payload: `{"code": 6, "payload": {}}`, expectedCode: 6, expectedOk: true},
		{name: "zero code", payload: `{"code": 0}`, expectedCode: 0, expectedOk: true},
		{name: "no code", payload: `{"payload": {}}`},
		{name: "not json", payload: `code`},
		{name: "out of range", payload: `{"code": 300}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			code, ok := FetchCode([]byte(test.payload))
			if ok != test.expectedOk || code != test.expectedCode {
				t.Fatalf("expected: %d %v\tgot: %d %v", test.expectedCode, test.expectedOk, code, ok)
			}
		})
	}
}
