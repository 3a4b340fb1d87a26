// Package filesystem provides implementations of the types.FS interface.
//
// NewOS returns an implementation backed by the real filesystem, used in
// production. NewAferoFS wraps any afero.Fs, which lets tests run against
// an in-memory filesystem without touching disk.
package filesystem
