// Package rows normalizes the row semantics of a candidate grid: it
// repairs cells whose text was split across adjacent columns, merges
// multi-line continuation fragments into one logical row per item, pads
// rows to the header width, and resorts rows by their recovered serial
// number while remapping dependent image indices.
package rows
