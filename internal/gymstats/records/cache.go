package records

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	megabyte           = 1024 * 1024
	recordsCacheExpire = 60 * 10 // seconds
)

// Cache holds computed record views per user. Every user has a generation
// number that is part of the key; bumping it drops all views of that user at once.
type Cache struct {
	cache *freecache.Cache

	genMutex    sync.RWMutex
	generations map[int]uint64
}

func NewCache(sizeMB int) *Cache {
	if sizeMB <= 0 {
		sizeMB = 20
	}
	return &Cache{
		cache:       freecache.NewCache(sizeMB * megabyte),
		generations: make(map[int]uint64),
	}
}

func (c *Cache) generation(userID int) uint64 {
	c.genMutex.RLock()
	defer c.genMutex.RUnlock()
	return c.generations[userID]
}

// Invalidate drops all cached views of the user.
func (c *Cache) Invalidate(userID int) {
	if c == nil {
		return
	}
	c.genMutex.Lock()
	c.generations[userID]++
	c.genMutex.Unlock()
	log.Tracef("records cache invalidated for user %d", userID)
}

// Cached returns the view from the cache, or loads and stores it.
// A nil cache always loads.
func Cached[T any](c *Cache, userID int, view string, load func() (T, error)) (T, error) {
	if c == nil {
		return load()
	}

	gen := c.generation(userID)
	key := []byte(fmt.Sprintf("%d::%d::%s", userID, gen, view))
	if cachedBytes, err := c.cache.Get(key); err == nil {
		var cached T
		if err := json.Unmarshal(cachedBytes, &cached); err == nil {
			log.Tracef("records cache hit: %s", key)
			return cached, nil
		} else {
			log.Errorf("records cache, unmarshal %s: %s", key, err)
		}
	}

	loaded, err := load()
	if err != nil {
		return loaded, err
	}

	loadedBytes, err := json.Marshal(loaded)
	if err != nil {
		log.Errorf("records cache, marshal %s: %s", key, err)
		return loaded, nil
	}
	if err := c.cache.Set(key, loadedBytes, recordsCacheExpire); err != nil {
		log.Errorf("records cache, set %s: %s", key, err)
	}

	return loaded, nil
}
