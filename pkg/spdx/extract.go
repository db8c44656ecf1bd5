package spdx

import (
	"sort"

	"complyhq/spdxexpr/pkg/spdx/ast"
)

// idCollector gathers every identifier in a tree via the fold walker.
type idCollector struct {
	ast.BaseWalker
	includeOrLater bool
	ids            map[string]struct{}
}

func (c *idCollector) VisitComponent(n *ast.Component) (any, error) {
	switch license := n.License.(type) {
	case ast.SimpleLicense:
		id := license.ID
		// An or-later marker that survived deprecated-id normalization
		// has no registered "-or-later" counterpart; the '+' suffix is
		// the only way to carry it, and callers opt into it.
		if license.OrLater && c.includeOrLater {
			id += "+"
		}
		c.ids[id] = struct{}{}
	case ast.LicenseRef:
		c.ids[license.String()] = struct{}{}
	}
	if n.Exception != nil {
		c.ids[n.Exception.String()] = struct{}{}
	}
	return n, nil
}

// ExtractIDs flattens a tree into the sorted set of identifiers it
// mentions: license ids, exception ids, and rendered LicenseRef/AdditionRef
// forms. Only opts.IncludeOrLater is consulted. A nil tree yields nil.
func ExtractIDs(n ast.Node, opts *Options) []string {
	if n == nil {
		return nil
	}
	o := opts.orDefaults()

	collector := &idCollector{
		includeOrLater: o.IncludeOrLater,
		ids:            make(map[string]struct{}),
	}
	if _, err := ast.Walk(n, collector); err != nil {
		return nil
	}

	ids := make([]string, 0, len(collector.ids))
	for id := range collector.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
