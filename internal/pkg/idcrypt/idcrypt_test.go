package idcrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodec_InvalidKeyLength(t *testing.T) {
	_, err := NewCodec([]byte("too-short"))
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	codec, err := NewCodec([]byte("0123456789abcdef"))
	require.NoError(t, err)

	for _, id := range []uint{0, 1, 42, 4294967295} {
		token, err := codec.EncryptID(id)
		require.NoError(t, err)

		decrypted, err := codec.DecryptID(token)
		require.NoError(t, err)
		assert.Equal(t, id, decrypted)
	}
}

func TestEncryptID_TokensDiffer(t *testing.T) {
	codec, err := NewCodec([]byte("0123456789abcdef"))
	require.NoError(t, err)

	// Random nonces make repeated encryptions of the same id distinct.
	first, err := codec.EncryptID(5)
	require.NoError(t, err)
	second, err := codec.EncryptID(5)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestDecryptID_Invalid(t *testing.T) {
	codec, err := NewCodec([]byte("0123456789abcdef"))
	require.NoError(t, err)

	token, err := codec.EncryptID(5)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "not hex", token: "zzzz"},
		{name: "too short", token: "deadbeef"},
		{name: "tampered", token: token + "00"},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.DecryptID(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestDecryptID_WrongKey(t *testing.T) {
	codec, err := NewCodec([]byte("0123456789abcdef"))
	require.NoError(t, err)
	other, err := NewCodec([]byte("fedcba9876543210"))
	require.NoError(t, err)

	token, err := codec.EncryptID(5)
	require.NoError(t, err)

	_, err = other.DecryptID(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
