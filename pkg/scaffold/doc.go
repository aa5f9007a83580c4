// Package scaffold runs the ordered bootstrap steps that turn an empty
// folder into a project with commit linting, formatting, spell-checking,
// pre-commit hooks and release automation configured.
//
// A Pipeline is a flat list of Steps run in declaration order. Every step
// works inside the target project folder, carried explicitly on the Env
// rather than by changing the process working directory. The first failing
// step stops the run; nothing is retried or rolled back.
package scaffold
