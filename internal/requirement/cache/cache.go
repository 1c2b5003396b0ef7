package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/awmpietro/prereq-inference-case/internal/requirement"
)

// InMemory is a bounded arena of parsed requirement trees keyed by the raw
// requirement text. Many courses share identical text, so the parse happens
// at most once per distinct string; trees are immutable and safe to hand out
// to concurrent evaluations.
type InMemory struct {
	mu    sync.RWMutex
	max   int
	items map[string]requirement.Requirement
}

func NewInMemory(max int) *InMemory {
	return &InMemory{
		max:   max,
		items: make(map[string]requirement.Requirement, max),
	}
}

func (c *InMemory) GetOrCompute(raw string, fn func() (requirement.Requirement, error)) (requirement.Requirement, error) {
	key := hash(raw)

	c.mu.RLock()
	if v, ok := c.items[key]; ok {
		c.mu.RUnlock()
		return v, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.items[key]; ok {
		return v, nil
	}

	req, err := fn()
	if err != nil {
		return nil, err
	}

	if len(c.items) < c.max {
		c.items[key] = req
	}

	return req, nil
}

func hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
