// Package textutil provides text normalization helpers for deriving
// filesystem- and URL-safe names from display text.
//
// The slug form is used for every console directory and per-game asset
// directory in the generated output tree, so all path segments are produced
// by the same rules.
package textutil
