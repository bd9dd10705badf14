// Package boards maps public board slugs to backing tables. The set of
// valid tables is closed: it comes from configuration, not from user
// input, so menu edits can never point the site at an arbitrary table.
package boards

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// TablePrefix is shared by every board table; the slug is what follows it.
const TablePrefix = "board_"

var tablePattern = regexp.MustCompile(`^board_[a-z0-9_]{1,40}$`)

// Registry is the validated slug -> table mapping.
type Registry struct {
	tables map[string]struct{}
}

// NewRegistry builds a registry from the configured table list. Every
// name must match board_[a-z0-9_]{1,40}; anything else is a config error.
func NewRegistry(tables []string) (*Registry, error) {
	r := &Registry{tables: make(map[string]struct{}, len(tables))}
	for _, t := range tables {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if !tablePattern.MatchString(t) {
			return nil, fmt.Errorf("invalid board table name %q", t)
		}
		r.tables[t] = struct{}{}
	}
	return r, nil
}

// ValidTable reports whether a table name is registered.
func (r *Registry) ValidTable(name string) bool {
	_, ok := r.tables[name]
	return ok
}

// TableForSlug resolves a route slug ("notice") to its table
// ("board_notice"). The second return is false for unregistered slugs.
func (r *Registry) TableForSlug(slug string) (string, bool) {
	table := TablePrefix + slug
	if !tablePattern.MatchString(table) {
		return "", false
	}
	_, ok := r.tables[table]
	return table, ok
}

// Slugs returns the registered slugs in stable order.
func (r *Registry) Slugs() []string {
	slugs := make([]string, 0, len(r.tables))
	for t := range r.tables {
		slugs = append(slugs, strings.TrimPrefix(t, TablePrefix))
	}
	sort.Strings(slugs)
	return slugs
}

// SlugForTable is the inverse of TableForSlug, used when deriving a menu
// item's URL from its board table.
func SlugForTable(table string) string {
	return strings.TrimPrefix(table, TablePrefix)
}
