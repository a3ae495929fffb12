package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"

	"gtm-engine/internal/core/domain"
)

// computeCache memoizes model results keyed by a hash of the complete input
// set. The engine reads nothing but its parameters, so the key provably
// covers every value that can affect output; a partial key would serve
// stale results. When the cache fills up it is dropped wholesale, which is
// cheaper than tracking recency for entries this small.
type computeCache struct {
	mu      sync.Mutex
	entries map[string]*domain.ModelResult
	max     int
}

func newComputeCache(max int) *computeCache {
	return &computeCache{entries: make(map[string]*domain.ModelResult), max: max}
}

// key derives the cache key from the canonical JSON encoding of the inputs.
// Struct field order is fixed, so equal inputs always encode identically.
func (c *computeCache) key(in domain.ModelInputs) (string, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

func (c *computeCache) get(key string) (*domain.ModelResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res, ok := c.entries[key]
	return res, ok
}

func (c *computeCache) put(key string, res *domain.ModelResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.max {
		c.entries = make(map[string]*domain.ModelResult)
	}
	c.entries[key] = res
}
