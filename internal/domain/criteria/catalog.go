// Package criteria is the compiled-in catalog of WCAG 2.0-2.2 success criteria.
//
// The catalog is built once at package initialization and never mutated.
// Every query returns copies, so callers cannot alter the shared table.
package criteria

import (
	"slices"

	"github.com/openkraft/a11ykraft/internal/domain"
)

var (
	catalog = buildCatalog()
	byID    = indexByID(catalog)
)

func buildCatalog() []domain.Criterion {
	all := make([]domain.Criterion, 0, len(perceivable)+len(operable)+len(understandable)+len(robust))
	all = append(all, perceivable...)
	all = append(all, operable...)
	all = append(all, understandable...)
	all = append(all, robust...)
	return all
}

func indexByID(all []domain.Criterion) map[string]int {
	idx := make(map[string]int, len(all))
	for i, c := range all {
		if _, dup := idx[c.ID]; dup {
			panic("criteria: duplicate criterion " + c.ID)
		}
		idx[c.ID] = i
	}
	return idx
}

func clone(c domain.Criterion) domain.Criterion {
	c.Techniques = slices.Clone(c.Techniques)
	c.Failures = slices.Clone(c.Failures)
	c.Components = slices.Clone(c.Components)
	return c
}

func filter(keep func(domain.Criterion) bool) []domain.Criterion {
	var out []domain.Criterion
	for _, c := range catalog {
		if keep(c) {
			out = append(out, clone(c))
		}
	}
	return out
}

// All returns every criterion in catalog order.
func All() []domain.Criterion {
	return filter(func(domain.Criterion) bool { return true })
}

// Len returns the number of criteria in the catalog.
func Len() int { return len(catalog) }

// Get looks up a criterion by identifier, e.g. "1.4.3".
func Get(id string) (domain.Criterion, bool) {
	i, ok := byID[id]
	if !ok {
		return domain.Criterion{}, false
	}
	return clone(catalog[i]), true
}

// Exists reports whether id is a known criterion.
func Exists(id string) bool {
	_, ok := byID[id]
	return ok
}

// ByLevel returns the criteria declared at exactly level.
func ByLevel(level domain.Level) []domain.Criterion {
	return filter(func(c domain.Criterion) bool { return c.Level == level })
}

// ByPrinciple returns the criteria under principle p.
func ByPrinciple(p domain.Principle) []domain.Criterion {
	return filter(func(c domain.Criterion) bool { return c.Principle == p })
}

// ApplicableTo returns criteria naming component explicitly or via the "all" sentinel.
func ApplicableTo(component string) []domain.Criterion {
	return filter(func(c domain.Criterion) bool { return c.AppliesTo(component) })
}

// ByVersion returns the criteria introduced in a WCAG version ("2.0", "2.1", "2.2").
func ByVersion(version string) []domain.Criterion {
	return filter(func(c domain.Criterion) bool { return c.Version == version })
}

// LevelAAOrBelow returns the A and AA criteria.
func LevelAAOrBelow() []domain.Criterion {
	return AtLevel(domain.LevelAA)
}

// AtLevel returns every criterion a conformance claim at level must satisfy.
func AtLevel(level domain.Level) []domain.Criterion {
	return filter(func(c domain.Criterion) bool { return level.Includes(c.Level) })
}

// ApplicableAtLevel combines ApplicableTo and AtLevel.
func ApplicableAtLevel(component string, level domain.Level) []domain.Criterion {
	return filter(func(c domain.Criterion) bool {
		return c.AppliesTo(component) && level.Includes(c.Level)
	})
}

// FilterIDs keeps the identifiers that exist in the catalog and fall within
// level, preserving input order.
func FilterIDs(ids []string, level domain.Level) []string {
	var out []string
	for _, id := range ids {
		i, ok := byID[id]
		if !ok {
			continue
		}
		if level.Includes(catalog[i].Level) {
			out = append(out, id)
		}
	}
	return out
}

// Versions lists the WCAG versions present in the catalog.
func Versions() []string {
	var out []string
	for _, c := range catalog {
		if !slices.Contains(out, c.Version) {
			out = append(out, c.Version)
		}
	}
	slices.Sort(out)
	return out
}
