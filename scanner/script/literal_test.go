package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimQuotes(t *testing.T) {
	assert.Equal(t, "foo", trimQuotes(`"foo"`))
	assert.Equal(t, "foo", trimQuotes(`'foo'`))
	assert.Equal(t, "foo", trimQuotes("`foo`"))
	assert.Equal(t, "foo", trimQuotes("foo"))
}
