// Package types holds the small set of types shared between the scaffold
// pipeline, the artifact templates and the filesystem implementations.
package types
