// Package catalog builds the in-memory library model from a directory tree
// of console folders and serializes it to the JSON snapshot.
//
// The expected input layout is library/<console>/<game-folder-or-rom-file>.
// Game folders may carry a game.json sidecar; bare ROM files become minimal
// entries named after their file stem. Building also copies referenced media
// into the output asset tree; scanning assembles the same model without
// touching the output.
package catalog
