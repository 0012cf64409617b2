// Package registry provides a generic, type-safe store of named items.
//
// Registration is first-wins: registering a name that is already present
// fails with ALREADY_EXISTS and leaves the existing item in place. The
// template registry relies on this to give earlier search-path directories
// precedence, and the engine set uses it to map extensions to engines.
package registry
