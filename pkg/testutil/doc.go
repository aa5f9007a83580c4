// Package testutil provides test doubles and assertions shared by the
// scaffold packages.
//
// Key components:
//   - MockRunner: testify mock of exec.CommandRunner that records every command
//   - NewMemoryFS: afero-backed in-memory filesystem
//   - FailingFS: wraps a filesystem and fails selected operations
//   - ReadFileT, AssertExecutable: filesystem assertions
//
// Tests never run the real npm, npx or git and never touch the disk.
package testutil
