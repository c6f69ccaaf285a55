package utils

import (
	"sort"
	"strconv"
	"strings"
)

// ParseCSVUint32 parses a comma separated list of numbers into a sorted,
// deduplicated slice. Malformed segments are skipped.
func ParseCSVUint32(s string) []uint32 {
	var out []uint32
	for _, seg := range strings.Split(s, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		v, err := strconv.ParseUint(seg, 10, 32)
		if err != nil {
			continue
		}
		out = append(out, uint32(v))
	}
	return SortedUnique(out)
}

// SortedUnique sorts values ascending and drops duplicates in place.
func SortedUnique(values []uint32) []uint32 {
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	n := 0
	for i, v := range values {
		if i == 0 || v != values[n-1] {
			values[n] = v
			n++
		}
	}
	return values[:n]
}

// ContainsSorted reports membership in an ascending slice.
func ContainsSorted(values []uint32, v uint32) bool {
	i := sort.Search(len(values), func(i int) bool { return values[i] >= v })
	return i < len(values) && values[i] == v
}
