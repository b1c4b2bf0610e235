package tools

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// toolFilter selects tools by name using glob patterns such as "get-*" or
// "*-kv".
type toolFilter struct {
	include []string
	exclude []string
}

// WithToolFilter keeps only the tools whose name matches at least one include
// pattern (every tool when include is empty) and no exclude pattern.
func WithToolFilter(include, exclude []string) Option {
	return func(r *Registry) {
		r.filter.include = append(r.filter.include, include...)
		r.filter.exclude = append(r.filter.exclude, exclude...)
	}
}

func (f toolFilter) validate() error {
	for _, p := range append(append([]string{}, f.include...), f.exclude...) {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid tool pattern %q", p)
		}
	}
	return nil
}

func (f toolFilter) allows(name string) bool {
	if len(f.include) > 0 && !matchAny(f.include, name) {
		return false
	}
	return !matchAny(f.exclude, name)
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if ok, err := doublestar.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}
