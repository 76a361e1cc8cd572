package nutrients

import (
	"context"
	"encoding/json"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	oneHour             = 60 * 60
	nutrientCacheExpire = oneHour * 24

	// stored for names the external API could not resolve, so the same
	// name is never re-queried by this process
	missMarker = "null"
)

var _ Tier = (*Cache)(nil)

// Cache is the process-local nutrient cache. It stores both resolved
// macros and failed lookups.
type Cache struct {
	cache *freecache.Cache
}

func NewCache() *Cache {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte
	return &Cache{
		cache: freecache.NewCache(cacheSize),
	}
}

func (c *Cache) Name() string {
	return "cache"
}

func (c *Cache) Resolve(_ context.Context, normalizedName string) (*Macros, bool, error) {
	macrosBytes, err := c.cache.Get([]byte(normalizedName))
	if err != nil {
		// freecache returns ErrNotFound for both missing and expired keys
		return nil, false, nil
	}

	if string(macrosBytes) == missMarker {
		log.Tracef("nutrient cache: cached miss for [%s]", normalizedName)
		return nil, true, nil
	}

	var m Macros
	if err := json.Unmarshal(macrosBytes, &m); err != nil {
		log.Errorf("nutrient cache: unmarshal macros for [%s]: %s", normalizedName, err)
		return nil, false, nil
	}

	return &m, true, nil
}

// Set stores the lookup outcome. A nil macros records the name as
// unresolvable.
func (c *Cache) Set(normalizedName string, m *Macros) {
	value := []byte(missMarker)
	if m != nil {
		macrosBytes, err := json.Marshal(m)
		if err != nil {
			log.Errorf("nutrient cache: marshal macros for [%s]: %s", normalizedName, err)
			return
		}
		value = macrosBytes
	}

	if err := c.cache.Set([]byte(normalizedName), value, nutrientCacheExpire); err != nil {
		log.Errorf("nutrient cache: set [%s]: %s", normalizedName, err)
	}
}
