package utils

import (
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru"
)

// Range is a closed interval of account IDs.
type Range struct {
	Min uint32
	Max uint32
}

type RangeList []Range

func (rl RangeList) Contains(id uint32) bool {
	for _, r := range rl {
		if id >= r.Min && id <= r.Max {
			return true
		}
	}
	return false
}

// ParseRanges parses a "A-B;C-D;..." blocklist specification. Reversed
// endpoints are swapped, malformed segments are skipped silently.
func ParseRanges(spec string) RangeList {
	var out RangeList
	for _, seg := range strings.Split(spec, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		dash := strings.Index(seg, "-")
		if dash < 0 {
			continue
		}
		a := strings.TrimSpace(seg[:dash])
		b := strings.TrimSpace(seg[dash+1:])
		if a == "" || b == "" {
			continue
		}
		mn, err := strconv.ParseUint(a, 10, 32)
		if err != nil {
			continue
		}
		mx, err := strconv.ParseUint(b, 10, 32)
		if err != nil {
			continue
		}
		if mn > mx {
			mn, mx = mx, mn
		}
		out = append(out, Range{Min: uint32(mn), Max: uint32(mx)})
	}
	return out
}

const rangeCacheSize = 32

var rangeCache, _ = lru.New(rangeCacheSize)

// CachedRanges parses through a small LRU keyed by the raw spec string.
// The blocklist is consulted on every login, level-up and tick, but the
// spec only ever changes with a config reload.
func CachedRanges(spec string) RangeList {
	if v, ok := rangeCache.Get(spec); ok {
		return v.(RangeList)
	}
	rl := ParseRanges(spec)
	rangeCache.Add(spec, rl)
	return rl
}
