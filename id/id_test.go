package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseForms(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"hyphenated", "f47ac10b-58cc-4372-a567-0e02b2c3d479"},
		{"uppercase", "F47AC10B-58CC-4372-A567-0E02B2C3D479"},
		{"bare_hex", "f47ac10b58cc4372a5670e02b2c3d479"},
		{"urn", "urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, "f47ac10b-58cc-4372-a567-0e02b2c3d479", parsed.String())
		})
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "not-a-uuid", "f47ac10b-58cc"} {
		_, err := Parse(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestNewIsVersion4(t *testing.T) {
	generated := New()
	require.False(t, generated.IsZero())

	u := generated.UUID()
	assert.Equal(t, uuid.Version(4), u.Version())
	assert.Equal(t, uuid.RFC4122, u.Variant())

	assert.NotEqual(t, generated, New())
}

func TestZero(t *testing.T) {
	assert.True(t, Zero().IsZero())
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", Zero().String())
	assert.False(t, New().IsZero())
}

func TestBytesRoundTrip(t *testing.T) {
	original := New()
	raw := original.Bytes()

	restored, err := FromBytes(raw[:])
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestFromBytesRejectsWrongLength(t *testing.T) {
	_, err := FromBytes([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestScan(t *testing.T) {
	want, err := Parse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	require.NoError(t, err)
	raw := want.Bytes()

	t.Run("blob", func(t *testing.T) {
		var got ID
		require.NoError(t, got.Scan(raw[:]))
		assert.Equal(t, want, got)
	})

	t.Run("text", func(t *testing.T) {
		var got ID
		require.NoError(t, got.Scan("f47ac10b-58cc-4372-a567-0e02b2c3d479"))
		assert.Equal(t, want, got)
	})

	t.Run("text_bytes", func(t *testing.T) {
		var got ID
		require.NoError(t, got.Scan([]byte("f47ac10b-58cc-4372-a567-0e02b2c3d479")))
		assert.Equal(t, want, got)
	})

	t.Run("unsupported", func(t *testing.T) {
		var got ID
		assert.Error(t, got.Scan(42))
	})
}

func TestValueIsRawBytes(t *testing.T) {
	original := New()

	v, err := original.Value()
	require.NoError(t, err)

	raw, ok := v.([]byte)
	require.True(t, ok)
	require.Len(t, raw, 16)

	expected := original.Bytes()
	assert.Equal(t, expected[:], raw)
}

func TestTextMarshalling(t *testing.T) {
	original, err := Parse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	require.NoError(t, err)

	text, err := original.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "f47ac10b-58cc-4372-a567-0e02b2c3d479", string(text))

	var restored ID
	require.NoError(t, restored.UnmarshalText(text))
	assert.Equal(t, original, restored)

	assert.Error(t, restored.UnmarshalText([]byte("nope")))
}
