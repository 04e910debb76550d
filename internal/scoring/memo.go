package scoring

import (
	"sync"
	"sync/atomic"

	"gocoach/domain/factors"
	"gocoach/domain/strategy"
	"gocoach/ports"
)

// Memo caches evaluation results keyed on the Decision Factors value.
// Only in-domain factors are cached, which bounds the cache at
// factors.DomainSize entries whatever callers send.
type Memo struct {
	next ports.StrategyEvaluator

	mu    sync.RWMutex
	cache map[factors.Factors]strategy.Result

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewMemo wraps next with an input-keyed cache
func NewMemo(next ports.StrategyEvaluator) *Memo {
	return &Memo{
		next:  next,
		cache: make(map[factors.Factors]strategy.Result),
	}
}

// Evaluate returns the cached result for f, computing it on first use
func (m *Memo) Evaluate(f factors.Factors) strategy.Result {
	m.mu.RLock()
	res, ok := m.cache[f]
	m.mu.RUnlock()
	if ok {
		m.hits.Add(1)
		return cloneResult(res)
	}

	m.misses.Add(1)
	res = m.next.Evaluate(f)
	if f.Valid() {
		m.mu.Lock()
		m.cache[f] = cloneResult(res)
		m.mu.Unlock()
	}
	return res
}

// MemoStats reports cache effectiveness
type MemoStats struct {
	Entries int    `json:"entries"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
}

// Stats returns a snapshot of the cache counters
func (m *Memo) Stats() MemoStats {
	m.mu.RLock()
	n := len(m.cache)
	m.mu.RUnlock()
	return MemoStats{Entries: n, Hits: m.hits.Load(), Misses: m.misses.Load()}
}

// cloneResult copies the applied-rule slice so cached entries stay immutable
func cloneResult(r strategy.Result) strategy.Result {
	applied := make([]strategy.Modifier, len(r.Applied))
	for i, mod := range r.Applied {
		mod.Values = append([]string(nil), mod.Values...)
		applied[i] = mod
	}
	r.Applied = applied
	return r
}
