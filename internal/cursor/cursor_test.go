package cursor

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	c := Encode("Product", 42)
	require.NotEmpty(t, c)

	id, err := Decode("Product", c)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestDecodeRejectsBadBase64(t *testing.T) {
	_, err := Decode("Product", "not-base64!!!")
	assert.Error(t, err)
}

func TestDecodeRejectsNonJSONPayload(t *testing.T) {
	raw := base64.StdEncoding.EncodeToString([]byte("cursor_42"))
	_, err := Decode("Product", raw)
	assert.Error(t, err)
}

func TestDecodeRejectsTypeMismatch(t *testing.T) {
	c := Encode("Review", 7)
	_, err := Decode("Product", c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type mismatch")
}

func TestDecodeRejectsTamperedID(t *testing.T) {
	raw := base64.StdEncoding.EncodeToString([]byte(`{"v":1,"t":"Product","id":"abc"}`))
	_, err := Decode("Product", raw)
	assert.Error(t, err)
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	raw := base64.StdEncoding.EncodeToString([]byte(`{"v":9,"t":"Product","id":"1"}`))
	_, err := Decode("Product", raw)
	assert.Error(t, err)
}
