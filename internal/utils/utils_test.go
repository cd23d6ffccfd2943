package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumber(t *testing.T) {
	n := GenerateOrderNumber()

	assert.True(t, strings.HasPrefix(n, "ORDER-"))
	// ORDER-20060102-150405-millis-rand
	parts := strings.Split(n, "-")
	assert.Len(t, parts, 5)
	assert.Len(t, parts[3], 3)
	assert.Len(t, parts[4], 4)
}

func TestGenerateOrderNumberDisambiguates(t *testing.T) {
	assert.NotEqual(t, GenerateOrderNumber(), GenerateOrderNumber())
}

func TestStrPtr(t *testing.T) {
	p := StrPtr("hello")
	assert.NotNil(t, p)
	assert.Equal(t, "hello", *p)
}

func TestPtrString(t *testing.T) {
	assert.Equal(t, "", PtrString(nil))
	assert.Equal(t, "hello", PtrString(StrPtr("hello")))
}
