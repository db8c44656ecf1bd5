package spdx

import "complyhq/spdxexpr/pkg/spdx/ast"

// compoundReplacement is the expansion of a deprecated compound GPL id: the
// current license id plus the exception the compound implied.
type compoundReplacement struct {
	license   string
	exception string
}

// compoundReplacements covers the deprecated "<gpl>-with-<exception>" ids.
// These are fixed historical spellings, not derivable from the registry.
var compoundReplacements = map[string]compoundReplacement{
	"GPL-2.0-with-autoconf-exception":  {"GPL-2.0-only", "Autoconf-exception-2.0"},
	"GPL-2.0-with-bison-exception":     {"GPL-2.0-only", "Bison-exception-2.2"},
	"GPL-2.0-with-classpath-exception": {"GPL-2.0-only", "Classpath-exception-2.0"},
	"GPL-2.0-with-font-exception":      {"GPL-2.0-only", "Font-exception-2.0"},
	"GPL-2.0-with-GCC-exception":       {"GPL-2.0-only", "GCC-exception-2.0"},
	"GPL-3.0-with-autoconf-exception":  {"GPL-3.0-only", "Autoconf-exception-3.0"},
	"GPL-3.0-with-GCC-exception":       {"GPL-3.0-only", "GCC-exception-3.1"},
}

// licenseRenames and exceptionRenames are the one-off deprecations that are
// plain renames rather than GPL-family respellings.
var licenseRenames = map[string]string{
	"StandardML-NJ": "SMLNJ",
}

var exceptionRenames = map[string]string{
	"Nokia-Qt-exception-1.1": "Qt-LGPL-exception-1.1",
}

// normalizeDeprecated rewrites deprecated identifiers throughout the tree to
// their current equivalents. Groups are rebuilt through ast.NewGroup so an
// expansion that produces an AND pair inside an AND group is spliced flat.
func (e *Engine) normalizeDeprecated(n ast.Node) ast.Node {
	switch t := n.(type) {
	case *ast.Group:
		children := make([]ast.Node, 0, len(t.Children))
		for _, child := range t.Children {
			children = append(children, e.normalizeDeprecated(child))
		}
		return ast.NewGroup(t.Op, children)
	case *ast.Component:
		return e.normalizeComponent(t)
	}
	return n
}

func (e *Engine) normalizeComponent(c *ast.Component) ast.Node {
	exception := c.Exception
	if id, ok := exception.(ast.ExceptionID); ok {
		if renamed, ok := exceptionRenames[string(id)]; ok {
			exception = ast.ExceptionID(renamed)
		}
	}

	license, isSimple := c.License.(ast.SimpleLicense)
	if !isSimple {
		// LicenseRefs are user-defined and never deprecated.
		return &ast.Component{License: c.License, Exception: exception}
	}

	if repl, ok := compoundReplacements[license.ID]; ok {
		base := ast.SimpleLicense{ID: repl.license, OrLater: license.OrLater}
		implied := &ast.Component{License: base, Exception: ast.ExceptionID(repl.exception)}
		if exception == nil || exception == ast.ExceptionID(repl.exception) {
			return implied
		}
		// The component carried its own WITH clause on top of the one
		// the compound id implies. Both survive, joined by AND and
		// referencing the current license id.
		own := &ast.Component{License: base, Exception: exception}
		return ast.NewGroup(ast.OperatorAnd, []ast.Node{own, implied})
	}

	if renamed, ok := licenseRenames[license.ID]; ok {
		license = ast.SimpleLicense{ID: renamed, OrLater: license.OrLater}
	}

	license = e.normalizeGPLFamily(license)
	return &ast.Component{License: license, Exception: exception}
}

// normalizeGPLFamily respells deprecated simple GPL-family ids. A deprecated
// id with an "-only" counterpart becomes that counterpart; if the component
// was marked or-later and the "-or-later" counterpart is registered and not
// itself deprecated, that id is used instead and the marker is dropped
// because the id now encodes it.
func (e *Engine) normalizeGPLFamily(license ast.SimpleLicense) ast.SimpleLicense {
	deprecated, known := e.registry.IsDeprecated(license.ID)
	if !known || !deprecated {
		return license
	}
	only := license.ID + "-only"
	if !e.registry.IsKnownLicenseID(only) {
		return license
	}

	if license.OrLater {
		later := license.ID + "-or-later"
		if e.registry.IsKnownLicenseID(later) {
			if dep, ok := e.registry.IsDeprecated(later); ok && !dep {
				return ast.SimpleLicense{ID: later}
			}
		}
		return ast.SimpleLicense{ID: only, OrLater: true}
	}
	return ast.SimpleLicense{ID: only}
}
