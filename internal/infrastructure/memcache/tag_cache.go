package memcache

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// TagCache es una caché en memoria con TTL fijo e invalidación por tags lógicos
// (products, categories y variantes por empresa). Las acciones mutadoras emiten
// los tags después de una escritura exitosa; las lecturas se memoizan por clave.
type TagCache struct {
	store *gocache.Cache

	mu   sync.Mutex
	tags map[string]map[string]struct{} // tag -> claves asociadas
}

// New crea la caché con el TTL por defecto para todas las entradas.
func New(defaultTTL time.Duration) *TagCache {
	return &TagCache{
		store: gocache.New(defaultTTL, 2*defaultTTL),
		tags:  make(map[string]map[string]struct{}),
	}
}

// Get devuelve el valor memoizado si sigue vigente.
func (c *TagCache) Get(key string) (any, bool) {
	return c.store.Get(key)
}

// Set memoiza un valor y lo asocia a los tags indicados.
func (c *TagCache) Set(key string, value any, tags ...string) {
	c.store.SetDefault(key, value)
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, tag := range tags {
		keys, ok := c.tags[tag]
		if !ok {
			keys = make(map[string]struct{})
			c.tags[tag] = keys
		}
		keys[key] = struct{}{}
	}
}

// Invalidate elimina todas las entradas asociadas a los tags indicados.
// Invalidar un tag sin entradas es un no-op.
func (c *TagCache) Invalidate(tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, tag := range tags {
		for key := range c.tags[tag] {
			c.store.Delete(key)
		}
		delete(c.tags, tag)
	}
}
