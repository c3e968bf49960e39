package decoder

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// CacheKey identifies a decode result by input identity and the
// parameters used to produce it: anything that would change the
// decode invalidates the entry.
type CacheKey struct {
	FileSize  int64
	FileModNS int64
	Params    Params
	Language  string
	Analyze   bool
}

func (k CacheKey) String() string {
	return fmt.Sprintf("%d:%d:%s:%.2f:%.2f:%.2f:%.2f:%t",
		k.FileSize, k.FileModNS, k.Language,
		k.Params.PulsePercentile, k.Params.GapPercentileDotDash,
		k.Params.GapPercentileChar, k.Params.GapPercentileWord, k.Analyze)
}

// resultCache is a fixed-capacity, insertion-order LRU keyed by file
// identity and decode parameters, implemented with
// hashicorp/golang-lru rather than a hand-rolled map+list for its
// concurrency-safe, capped eviction.
type resultCache struct {
	cache *lru.Cache
}

func newResultCache(capacity int) (*resultCache, error) {
	if capacity <= 0 {
		capacity = 100
	}
	c, err := lru.New(capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: creating result cache: %v", ErrInternal, err)
	}
	return &resultCache{cache: c}, nil
}

func (r *resultCache) get(key CacheKey) (DecodeResult, bool) {
	if r == nil {
		return DecodeResult{}, false
	}
	v, ok := r.cache.Peek(key.String())
	if !ok {
		return DecodeResult{}, false
	}
	return v.(DecodeResult), true
}

func (r *resultCache) put(key CacheKey, result DecodeResult) {
	if r == nil {
		return
	}
	r.cache.Add(key.String(), result)
}

func (r *resultCache) Len() int {
	if r == nil {
		return 0
	}
	return r.cache.Len()
}
