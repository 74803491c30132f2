package entity

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberforge/emberforge/codec"
	"github.com/emberforge/emberforge/id"
)

func TestDescriptorJSONDecode(t *testing.T) {
	payload := `{
		"id": "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		"label": "Rusted Gate",
		"description": "An iron gate, long past its last oiling."
	}`

	desc, err := codec.Decode[Descriptor](strings.NewReader(payload))
	require.NoError(t, err)

	assert.Equal(t, "f47ac10b-58cc-4372-a567-0e02b2c3d479", desc.ID.String())
	assert.Equal(t, "Rusted Gate", desc.Label)
	assert.Equal(t, "An iron gate, long past its last oiling.", desc.Description)
}

func TestDescriptorJSONRoundTrip(t *testing.T) {
	original := Descriptor{
		ID:          id.New(),
		Label:       "Ember Shrine",
		Description: "Still warm to the touch.",
	}

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, original))

	restored, err := codec.Decode[Descriptor](&buf)
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestDescriptorRejectsBadID(t *testing.T) {
	_, err := codec.Decode[Descriptor](strings.NewReader(`{"id": "not-a-uuid"}`))
	assert.Error(t, err)
}
