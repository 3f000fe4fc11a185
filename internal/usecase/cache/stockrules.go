package cache

import (
	"context"
	"sync"

	"retailcore/internal/domain/entities"
	"retailcore/internal/usecase/interfaces"
)

// StockRuleCache memoizes the stock-rule list in front of the repository.
//
// Stock rules are read on every generate and apply call but change only on
// admin writes, so the admin write path calls Invalidate and the next read
// reloads. The cache is an explicit dependency handed to its consumers,
// not package state.

type StockRuleCache struct {
	repo interfaces.IStockRuleRepository

	mu     sync.RWMutex
	rules  []entities.StockRule
	loaded bool
}

func NewStockRuleCache(repo interfaces.IStockRuleRepository) *StockRuleCache {
	return &StockRuleCache{repo: repo}
}

// Get returns the cached rules, loading them from the repository on the
// first call after construction or invalidation.
func (c *StockRuleCache) Get(ctx context.Context) ([]entities.StockRule, error) {
	c.mu.RLock()
	if c.loaded {
		rules := c.rules
		c.mu.RUnlock()
		return rules, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return c.rules, nil
	}
	rules, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	c.rules = rules
	c.loaded = true
	return rules, nil
}

// Invalidate drops the cached rules. The next Get reloads.
func (c *StockRuleCache) Invalidate() {
	c.mu.Lock()
	c.rules = nil
	c.loaded = false
	c.mu.Unlock()
}
