package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTagCache_SetGet(t *testing.T) {
	c := New(time.Minute)

	c.Set("categories:c1", []string{"Ropa"}, "categories:c1")
	v, ok := c.Get("categories:c1")
	assert.True(t, ok)
	assert.Equal(t, []string{"Ropa"}, v)

	_, ok = c.Get("categories:c2")
	assert.False(t, ok, "otra empresa no debe compartir entradas")
}

func TestTagCache_InvalidateTag(t *testing.T) {
	c := New(time.Minute)

	c.Set("categories:c1", "a", "categories:c1")
	c.Set("products:create:c1", "b", "categories:c1", "products:create:c1")
	c.Set("categories:c2", "c", "categories:c2")

	c.Invalidate("categories:c1")

	_, ok := c.Get("categories:c1")
	assert.False(t, ok)
	_, ok = c.Get("products:create:c1")
	assert.False(t, ok, "una entrada con varios tags cae si cualquiera se invalida")
	_, ok = c.Get("categories:c2")
	assert.True(t, ok, "los tags de otra empresa no se ven afectados")
}

func TestTagCache_InvalidateUnknownTag(t *testing.T) {
	c := New(time.Minute)
	// No debe entrar en pánico ni afectar entradas existentes
	c.Set("k", 1, "t")
	c.Invalidate("no-existe")
	_, ok := c.Get("k")
	assert.True(t, ok)
}
