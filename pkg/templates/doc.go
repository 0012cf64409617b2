// Package templates discovers templates on a search path and resolves them
// by logical name.
//
// A logical name is the template path relative to the search-path directory
// it was found under, with the extension removed and "/" as separator:
// "foo/bar.tmpl" under any root is "foo/bar". When several directories hold
// the same logical name, the first directory on the search path wins.
//
// The registry has two phases. A new registry is un-built; Build scans the
// search path once and the result is kept for the registry's lifetime with
// no invalidation. Resolve and Names build on first use. Descriptors load
// their metadata, parameters and source lazily and memoize them.
//
// Neither phase is guarded for concurrent first access. Hosts that share a
// registry between goroutines call Warm first, after which every read is
// read-only.
package templates
