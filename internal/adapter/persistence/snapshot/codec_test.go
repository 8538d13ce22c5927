package snapshot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moap_dashboard/internal/adapter/persistence/memory"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	snap := memory.NewSeeded().Snapshot()

	data, err := Encode(snap)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)

	want, _ := json.Marshal(snap)
	have, _ := json.Marshal(got)
	assert.JSONEq(t, string(want), string(have))
}

func TestEncodeWritesVersionAndNumbers(t *testing.T) {
	data, err := Encode(memory.NewSeeded().Snapshot())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.EqualValues(t, CurrentVersion, doc["version"])

	materials := doc["materials"].([]any)
	first := materials[0].(map[string]any)
	assert.Equal(t, 0.15, first["price"])
}

func TestDecode(t *testing.T) {
	t.Run("absent keys stay nil", func(t *testing.T) {
		got, err := Decode([]byte(`{"materials":[{"id":"1","name":"Cimento","unit":"kg","price":0.15,"category":"Estrutura"}]}`))
		require.NoError(t, err)
		require.Len(t, got.Materials, 1)
		assert.Equal(t, "0.15", got.Materials[0].Price.String())
		assert.Nil(t, got.Budgets)
		assert.Nil(t, got.Invitations)
		assert.Nil(t, got.Messages)
	})

	t.Run("null keys stay nil", func(t *testing.T) {
		got, err := Decode([]byte(`{"budgets":null,"messages":null}`))
		require.NoError(t, err)
		assert.Nil(t, got.Budgets)
		assert.Nil(t, got.Messages)
	})

	t.Run("empty arrays are kept", func(t *testing.T) {
		got, err := Decode([]byte(`{"notifications":[]}`))
		require.NoError(t, err)
		assert.NotNil(t, got.Notifications)
		assert.Empty(t, got.Notifications)
	})

	t.Run("legacy invites key", func(t *testing.T) {
		got, err := Decode([]byte(`{"invites":[{"id":"i1","email":"a@b.pt","status":"enviado","sentDate":"2024-01-25","sentBy":"Administrador"}]}`))
		require.NoError(t, err)
		require.Len(t, got.Invitations, 1)
		assert.Equal(t, "a@b.pt", got.Invitations[0].Email)
	})

	t.Run("invitations wins over invites", func(t *testing.T) {
		got, err := Decode([]byte(`{"invitations":[],"invites":[{"id":"old"}]}`))
		require.NoError(t, err)
		assert.Empty(t, got.Invitations)
	})

	t.Run("legacy messages keyed by conversation", func(t *testing.T) {
		got, err := Decode([]byte(`{"messages":{
			"conv-3":[{"id":"m4","senderId":"3","content":"b","timestamp":"2024-01-27T16:00:00Z"}],
			"conv-2":[{"id":"m1","senderId":"2","content":"a","timestamp":"2024-01-28T09:00:00Z"}]
		}}`))
		require.NoError(t, err)
		require.Len(t, got.Messages, 2)
		assert.Equal(t, "m1", got.Messages[0].ID)
		assert.Equal(t, "conv-2", got.Messages[0].ConversationID)
		assert.Equal(t, "conv-3", got.Messages[1].ConversationID)
	})

	t.Run("version without other keys", func(t *testing.T) {
		got, err := Decode([]byte(`{"version":1}`))
		require.NoError(t, err)
		assert.Nil(t, got.Materials)
	})

	t.Run("future version is refused", func(t *testing.T) {
		_, err := Decode([]byte(`{"version":99}`))
		assert.ErrorIs(t, err, ErrUnsupportedVersion)
	})

	t.Run("garbage", func(t *testing.T) {
		for _, in := range []string{`not json`, `[1,2]`, `null`, `{"materials":"x"}`, `{"messages":5}`} {
			_, err := Decode([]byte(in))
			assert.Error(t, err, in)
		}
	})
}
