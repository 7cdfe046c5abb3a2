package sqlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteIdentifier(t *testing.T) {
	assert.Equal(t, "`products`", QuoteIdentifier("products"))
	assert.Equal(t, "`weird``name`", QuoteIdentifier("weird`name"))
}
