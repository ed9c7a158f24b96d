package protocol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage(t *testing.T) {
	msg := &Message{
		SSID:        []byte("ssid"),
		From:        "alice",
		To:          "bob",
		Protocol:    "test",
		RoundNumber: 2,
		Data:        []byte{1, 2, 3},
	}
	assert.True(t, msg.IsFor("bob"))
	assert.False(t, msg.IsFor("alice"))
	assert.False(t, msg.IsFor("carol"))

	data, err := msg.MarshalBinary()
	require.NoError(t, err)
	var received Message
	require.NoError(t, received.UnmarshalBinary(data))
	assert.Equal(t, *msg, received)
	assert.Equal(t, msg.Hash(), received.Hash())

	tampered := received
	tampered.RoundNumber = 3
	assert.NotEqual(t, msg.Hash(), tampered.Hash())
	tampered = received
	tampered.From, tampered.To = tampered.To, tampered.From
	assert.NotEqual(t, msg.Hash(), tampered.Hash())
}

func TestError(t *testing.T) {
	cause := errors.New("cause")
	err := error(Error{RoundNumber: 3, Culprit: "bob", Err: cause})
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "round 3: party: bob: cause", err.Error())
	assert.Equal(t, "round 1: cause", Error{RoundNumber: 1, Err: cause}.Error())
}
