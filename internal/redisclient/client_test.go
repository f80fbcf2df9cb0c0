package redisclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductoKey(t *testing.T) {
	assert.Equal(t, "catalog:producto:42", ProductoKey(42))
}

func TestProductoListKey(t *testing.T) {
	assert.Equal(t, "catalog:productos:all", ProductoListKey(nil))

	id := int64(3)
	assert.Equal(t, "catalog:productos:cat:3", ProductoListKey(&id))
}
