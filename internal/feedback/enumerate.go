package feedback

import "sync"

var (
	allOnce     sync.Once
	allPatterns []Pattern
)

// All returns the 243 feedback patterns ordered by index. The slice is built
// once and shared; callers must not modify it.
func All() []Pattern {
	allOnce.Do(func() {
		allPatterns = make([]Pattern, Count)
		for i := range allPatterns {
			allPatterns[i] = FromIndex(i)
		}
	})
	return allPatterns
}

// FromIndex expands i (0..242) into its base-3 digits, left-padded to five.
func FromIndex(i int) Pattern {
	var p Pattern
	for pos := Size - 1; pos >= 0; pos-- {
		p[pos] = Mark(i % 3)
		i /= 3
	}
	return p
}

// Index is the inverse of FromIndex.
func (p Pattern) Index() int {
	n := 0
	for _, m := range p {
		n = n*3 + int(m)
	}
	return n
}
