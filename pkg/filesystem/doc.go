// Package filesystem provides the filesystem seam for linecook.
//
// Everything that touches disk goes through an afero.Fs: the OS filesystem
// in production and an in-memory filesystem in tests. The package also
// implements recursive, extension-filtered file enumeration used for
// template discovery.
package filesystem
