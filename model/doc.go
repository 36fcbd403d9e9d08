// Package model turns the raw SpreadsheetML and DrawingML trees into
// self-contained entities a caller can use without consulting the package's
// lookup tables: colors become concrete "rrggbbaa" hex strings, lengths
// become points, angles become degrees, and every style reference is
// followed to its terminal value.
//
// Resolution needs the workbook's shared tables, carried by [Context]:
// the stylesheet, the shared string table, the theme and the workbook's
// defined names. Context values are read-only; the same Context is handed
// to every resolver of one workbook.
//
// The resolvers preserve the two failure classes of the raw layer. Structural
// corruption (a shared string index out of range, an unknown cell type token,
// an unknown error code) fails the whole operation. Formatting gaps (a
// missing font id, an unknown enum token, an unresolvable color) fall back
// to documented defaults and never fail.
package model
