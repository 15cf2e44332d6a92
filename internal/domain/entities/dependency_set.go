package entities

import "sort"

// DependencySet is a deduplicated set of npm package identifiers.
// Insertion is idempotent, so aggregating the same component twice
// yields the same set.
type DependencySet struct {
	items map[string]struct{}
}

// NewDependencySet creates a set containing the given packages.
func NewDependencySet(packages ...string) *DependencySet {
	s := &DependencySet{items: make(map[string]struct{})}
	s.Add(packages...)
	return s
}

// Add inserts the given packages, ignoring duplicates and empty strings.
func (it *DependencySet) Add(packages ...string) {
	for _, pkg := range packages {
		if pkg == "" {
			continue
		}
		it.items[pkg] = struct{}{}
	}
}

// Union returns a new set with every package from both sets. Neither
// receiver nor argument is modified.
func (it *DependencySet) Union(other *DependencySet) *DependencySet {
	merged := NewDependencySet()
	for pkg := range it.items {
		merged.items[pkg] = struct{}{}
	}
	for pkg := range other.items {
		merged.items[pkg] = struct{}{}
	}
	return merged
}

// Contains reports whether the package is in the set.
func (it *DependencySet) Contains(pkg string) bool {
	_, ok := it.items[pkg]
	return ok
}

// Len returns the number of packages in the set.
func (it *DependencySet) Len() int {
	return len(it.items)
}

// Sorted returns the packages in lexical order.
func (it *DependencySet) Sorted() []string {
	packages := make([]string, 0, len(it.items))
	for pkg := range it.items {
		packages = append(packages, pkg)
	}
	sort.Strings(packages)
	return packages
}
