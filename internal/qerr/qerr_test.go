package qerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindInvalidArgument, KindOf(InvalidArgumentf("page must be >= 1")))
	assert.Equal(t, KindNotFound, KindOf(NotFoundf("product %d not found", 7)))
	assert.Equal(t, KindStoreUnavailable, KindOf(StoreUnavailable("count products", errors.New("timeout"))))
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(0), KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("resolve page: %w", InvalidArgumentf("pageSize must be >= 1"))
	assert.True(t, IsInvalidArgument(err))
	assert.False(t, IsNotFound(err))
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := StoreUnavailable("select products", cause)
	require.True(t, errors.Is(err, cause))
	assert.Equal(t, "select products: connection refused", err.Error())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "invalid_argument", KindInvalidArgument.String())
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "store_unavailable", KindStoreUnavailable.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
