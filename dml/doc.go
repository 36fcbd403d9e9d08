// Package dml contains the raw DrawingML loaders: theme parts, the color
// union with its transform chain, fills, outlines, effects, 3D scene
// settings, text bodies, shape properties, and the spreadsheet drawing part
// with its anchored content tree.
//
// Like package sml, the structs here mirror the markup without resolving
// anything. Scheme color names stay names, relationship ids stay ids, and
// every length is still in EMUs; package model turns them into values.
package dml
