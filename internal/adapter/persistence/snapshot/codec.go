// Package snapshot persists the collection store as one JSON document under a
// fixed key of a key-value backend.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"moap_dashboard/internal/adapter/persistence/memory"
	"moap_dashboard/internal/domain/entities"
)

// CurrentVersion is written in every document. Documents without a version
// predate it and are read the same way.
const CurrentVersion = 1

var ErrUnsupportedVersion = errors.New("unsupported snapshot version")

type document struct {
	Version int `json:"version"`
	memory.Snapshot
}

// Encode renders the snapshot as the persisted JSON document.
func Encode(s memory.Snapshot) ([]byte, error) {
	return json.Marshal(document{Version: CurrentVersion, Snapshot: s})
}

// Decode parses a persisted document. Keys that are absent, or null, leave
// the matching collection nil so Restore keeps what the store already holds.
//
// Older dashboard builds wrote invitations under "invites" and kept messages
// as an object keyed by conversation id; both shapes are accepted.
func Decode(data []byte) (memory.Snapshot, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return memory.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if raw == nil {
		return memory.Snapshot{}, fmt.Errorf("decode snapshot: not an object")
	}

	if v, ok := raw["version"]; ok {
		var version int
		if err := json.Unmarshal(v, &version); err != nil {
			return memory.Snapshot{}, fmt.Errorf("decode version: %w", err)
		}
		if version > CurrentVersion {
			return memory.Snapshot{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
		}
	}

	var s memory.Snapshot
	fields := []struct {
		key string
		dst any
	}{
		{"materials", &s.Materials},
		{"budgets", &s.Budgets},
		{"obras", &s.Obras},
		{"visitas", &s.Visitas},
		{"concursos", &s.Concursos},
		{"conversations", &s.Conversations},
		{"notifications", &s.Notifications},
	}
	for _, f := range fields {
		if err := decodeField(raw, f.key, f.dst); err != nil {
			return memory.Snapshot{}, err
		}
	}

	invKey := "invitations"
	if _, ok := raw[invKey]; !ok {
		invKey = "invites"
	}
	if err := decodeField(raw, invKey, &s.Invitations); err != nil {
		return memory.Snapshot{}, err
	}

	msgs, err := decodeMessages(raw["messages"])
	if err != nil {
		return memory.Snapshot{}, err
	}
	s.Messages = msgs
	return s, nil
}

func decodeField(raw map[string]json.RawMessage, key string, dst any) error {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func decodeMessages(v json.RawMessage) ([]entities.Message, error) {
	if len(v) == 0 {
		return nil, nil
	}
	var list []entities.Message
	listErr := json.Unmarshal(v, &list)
	if listErr == nil {
		return list, nil
	}

	var byConversation map[string][]entities.Message
	if err := json.Unmarshal(v, &byConversation); err != nil {
		return nil, fmt.Errorf("decode messages: %w", listErr)
	}
	ids := make([]string, 0, len(byConversation))
	for id := range byConversation {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := []entities.Message{}
	for _, id := range ids {
		for _, m := range byConversation[id] {
			if m.ConversationID == "" {
				m.ConversationID = id
			}
			out = append(out, m)
		}
	}
	return out, nil
}
