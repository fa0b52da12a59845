package stats

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// DefaultMetaCategory is the provider's aggregate index category.
const DefaultMetaCategory = "Índice"

// DefaultExcluded lists categories that are not comparable across teams.
var DefaultExcluded = []string{
	"Posse de Bola",
	"Cartão Amarelo",
	"Cartão Vermelho",
	"Impedimentos",
	"Bloqueios",
	"Faltas Cometidas",
	"Faltas Sofridas",
}

// ExclusionSet matches category names that must never be emitted.
// Names compare after NFC normalization, case folding and trimming.
type ExclusionSet struct {
	names map[string]struct{}
}

// NewExclusionSet builds a set from the excluded names plus the meta category.
// Blank names are ignored, so an empty list excludes nothing beyond meta.
func NewExclusionSet(excluded []string, metaCategory string) ExclusionSet {
	set := ExclusionSet{names: make(map[string]struct{}, len(excluded)+1)}
	for _, name := range append([]string{metaCategory}, excluded...) {
		key := normalizeName(name)
		if key == "" {
			continue
		}
		set.names[key] = struct{}{}
	}
	return set
}

// DefaultExclusions returns the built-in exclusion set.
func DefaultExclusions() ExclusionSet {
	return NewExclusionSet(DefaultExcluded, DefaultMetaCategory)
}

// Contains reports whether name is excluded.
func (s ExclusionSet) Contains(name string) bool {
	if len(s.names) == 0 {
		return false
	}
	_, ok := s.names[normalizeName(name)]
	return ok
}

// Len returns the number of distinct excluded names.
func (s ExclusionSet) Len() int {
	return len(s.names)
}

func normalizeName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	// cases.Caser is stateful, so a fresh one per call keeps this safe for concurrent use.
	return cases.Fold().String(norm.NFC.String(trimmed))
}
