// Package filesystem provides filesystem implementations for the scaffold.
//
// This package contains implementations of the types.FS interface: the OS
// filesystem used for real runs and an afero-backed one used for dry runs
// and tests.
package filesystem
