// Package sml contains the raw SpreadsheetML part loaders. Each part parser
// streams its XML through an xmlcur.Cursor and produces plain structs that
// mirror the markup: optional attributes are pointers or (value, ok) pairs,
// enum tokens are typed values that fall back to their default variant when
// the token is unknown, and extension lists are skipped.
//
// The structs here are deliberately unresolved. Shared-string indexes, style
// ids, theme references and the like are carried as written; the model
// package turns them into self-contained values.
package sml
