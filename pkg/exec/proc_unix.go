//go:build unix

package exec

import (
	osexec "os/exec"
	"syscall"
)

// configureProcess starts the command in its own process group and makes
// cancellation signal the whole group, so tools spawned by npm exit too.
func configureProcess(c *osexec.Cmd) {
	c.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	c.Cancel = func() error {
		return syscall.Kill(-c.Process.Pid, syscall.SIGTERM)
	}
}
