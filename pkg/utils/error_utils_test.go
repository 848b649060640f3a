package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("customer@example.com"))
	assert.True(t, IsValidEmail("First.Last+tag@mail.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidURL(t *testing.T) {
	assert.True(t, IsValidURL("https://cdn.example.com/before.jpg"))
	assert.True(t, IsValidURL("http://localhost:9000/img.png"))
	assert.False(t, IsValidURL("ftp://example.com/file"))
	assert.False(t, IsValidURL("/relative/path.jpg"))
	assert.False(t, IsValidURL(""))
}
