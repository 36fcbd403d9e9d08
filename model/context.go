package model

import (
	"github.com/tsawler/cellula/dml"
	"github.com/tsawler/cellula/sml"
)

// Context carries the workbook-wide tables the resolvers consult. Any field
// may be nil when the workbook lacks the part; resolution then falls back to
// the documented defaults.
type Context struct {
	Stylesheet    *sml.Stylesheet
	SharedStrings *sml.SharedStrings
	Theme         *dml.Theme
	DefinedNames  []sml.DefinedName
}

func (ctx *Context) colorScheme() *dml.ColorScheme {
	if ctx == nil || ctx.Theme == nil {
		return nil
	}
	return ctx.Theme.ColorScheme
}

func (ctx *Context) stylesheet() *sml.Stylesheet {
	if ctx == nil {
		return nil
	}
	return ctx.Stylesheet
}

// definedName finds a defined name by its case-sensitive name. Sheet-scoped
// entries shadow nothing here; the first match wins.
func (ctx *Context) definedName(name string) (sml.DefinedName, bool) {
	if ctx == nil {
		return sml.DefinedName{}, false
	}
	for _, dn := range ctx.DefinedNames {
		if dn.Name == name {
			return dn, true
		}
	}
	return sml.DefinedName{}, false
}
