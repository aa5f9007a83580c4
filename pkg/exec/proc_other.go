//go:build !unix

package exec

import osexec "os/exec"

// configureProcess keeps the default behavior: cancellation kills the
// direct child and WaitDelay bounds the wait for its pipes.
func configureProcess(c *osexec.Cmd) {}
