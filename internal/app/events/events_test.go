package events

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	evt := New(ProfileWriteFailed, 42, "pic1")

	_, err := uuid.Parse(evt.ID)
	assert.NoError(t, err)
	assert.Equal(t, ProfileWriteFailed, evt.Type)
	assert.EqualValues(t, 42, evt.UserID)
	assert.Equal(t, "pic1", evt.ProfilePicture)
	assert.False(t, evt.OccurredAt.IsZero())
	assert.NotEqual(t, evt.ID, New(ProfileWriteFailed, 42, "pic1").ID)
}

func TestMessage(t *testing.T) {
	evt := New(UserRegistered, 7, "")

	msg, err := Message(evt)
	require.NoError(t, err)

	assert.Equal(t, "7", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "type", msg.Headers[0].Key)
	assert.Equal(t, "user.registered", string(msg.Headers[0].Value))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "user.registered", decoded["type"])
	assert.EqualValues(t, 7, decoded["user_id"])
	assert.NotContains(t, decoded, "profile_picture")
}
