package timefmt

import (
	"strings"

	perr "tsconv/internal/platform/errors"
)

// Registry is the immutable-after-build catalog of format descriptors.
// Build it once with NewRegistry + Register (or Builtin) and share it;
// concurrent reads are safe because nothing mutates after construction
type Registry struct {
	byID    map[string]*FormatDescriptor
	byAlias map[string]string
	byCat   map[Category][]string
	order   []string
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{
		byID:    map[string]*FormatDescriptor{},
		byAlias: map[string]string{},
		byCat:   map[Category][]string{},
	}
}

// Register adds d and indexes its id, aliases (lower-cased), and category.
// Duplicate ids or aliases are rejected rather than silently overwritten
func (g *Registry) Register(d *FormatDescriptor) error {
	if d == nil {
		return perr.InvalidArgf("nil descriptor")
	}
	id := strings.ToLower(strings.TrimSpace(d.ID))
	if id == "" {
		return perr.InvalidArgf("descriptor id is required")
	}
	if !d.Category.Valid() {
		return perr.InvalidArgf("descriptor %q has unknown category %q", id, d.Category)
	}
	if len(d.Rules) == 0 {
		return perr.InvalidArgf("descriptor %q has no match rules", id)
	}
	if d.Format == nil {
		return perr.InvalidArgf("descriptor %q has no formatter", id)
	}
	if _, dup := g.byID[id]; dup {
		return perr.Conflictf("duplicate format id %q", id)
	}
	if owner, dup := g.byAlias[id]; dup {
		return perr.Conflictf("format id %q collides with alias of %q", id, owner)
	}
	// validate every alias before touching the indexes so a rejected
	// descriptor leaves no partial state behind
	keys := make([]string, 0, len(d.Aliases))
	seen := map[string]bool{}
	for _, a := range d.Aliases {
		key := strings.ToLower(strings.TrimSpace(a))
		if key == "" {
			return perr.InvalidArgf("descriptor %q has an empty alias", id)
		}
		if seen[key] {
			return perr.Conflictf("descriptor %q repeats alias %q", id, key)
		}
		if _, dup := g.byID[key]; dup {
			return perr.Conflictf("alias %q of %q collides with a format id", key, id)
		}
		if owner, dup := g.byAlias[key]; dup {
			return perr.Conflictf("alias %q of %q already owned by %q", key, id, owner)
		}
		seen[key] = true
		keys = append(keys, key)
	}
	for _, key := range keys {
		g.byAlias[key] = id
	}
	g.byID[id] = d
	g.byCat[d.Category] = append(g.byCat[d.Category], id)
	g.order = append(g.order, id)
	return nil
}

// Resolve looks up a descriptor by id or alias, case-insensitively
func (g *Registry) Resolve(identifier string) (*FormatDescriptor, bool) {
	key := strings.ToLower(strings.TrimSpace(identifier))
	if key == "" {
		return nil, false
	}
	if d, ok := g.byID[key]; ok {
		return d, true
	}
	if id, ok := g.byAlias[key]; ok {
		return g.byID[id], true
	}
	return nil, false
}

// ByCategory returns all descriptors in c, in registration order
func (g *Registry) ByCategory(c Category) []*FormatDescriptor {
	ids := g.byCat[c]
	out := make([]*FormatDescriptor, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.byID[id])
	}
	return out
}

// All returns every descriptor in registration order
func (g *Registry) All() []*FormatDescriptor {
	out := make([]*FormatDescriptor, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.byID[id])
	}
	return out
}

// Len returns the number of registered descriptors
func (g *Registry) Len() int { return len(g.order) }
