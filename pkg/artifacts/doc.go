// Package artifacts holds the configuration payloads written into a
// scaffolded project. Every payload is a literal template; the only inputs
// are the resolved configuration values (flavor, branch, remote URL, ticket
// prefix).
//
// JSON artifacts are rendered with 2-space indentation and a trailing
// newline, with object keys kept in declaration order.
package artifacts
