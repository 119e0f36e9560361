// Package boundary exposes the textkey operations as a named entry-point
// table for host marshaling layers.
//
// A host that passes arguments as string arrays (an FFI bridge, an RPC shim)
// dispatches by entry-point name without linking against the core package's
// types. The table is stateless and carries no configuration; the core
// functions never depend on this package.
package boundary

import (
	"fmt"

	"github.com/ZaguanLabs/textkey"
)

// Entry-point names as registered with host boundaries. These are wire
// identifiers shared with other implementations; do not rename.
const (
	NormalizeText         = "normalize_text"
	NormalizeAndHash      = "normalize_and_hash"
	NormalizeAndHashBatch = "normalize_and_hash_batch"
)

// Func is the uniform adapter signature: string arguments in, string results
// out. Every registered function is total over its inputs.
type Func func(args []string) []string

// table is built once at package initialization and never mutated.
var table = map[string]Func{
	NormalizeText: func(args []string) []string {
		out := make([]string, len(args))
		for i, arg := range args {
			out[i] = textkey.NormalizeText(arg)
		}
		return out
	},
	NormalizeAndHash: func(args []string) []string {
		out := make([]string, len(args))
		for i, arg := range args {
			out[i] = textkey.NormalizeAndHash(arg)
		}
		return out
	},
	NormalizeAndHashBatch: func(args []string) []string {
		return textkey.NormalizeAndHashBatch(args)
	},
}

// Names returns the registered entry-point names.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	return names
}

// Lookup returns the entry point registered under name.
func Lookup(name string) (Func, bool) {
	fn, ok := table[name]
	return fn, ok
}

// Call dispatches to the entry point registered under name.
func Call(name string, args []string) ([]string, error) {
	fn, ok := table[name]
	if !ok {
		return nil, fmt.Errorf("unknown entry point %q", name)
	}
	return fn(args), nil
}
