package types

import (
	"io/fs"
)

// File modes used for artifacts
const (
	ModeFile       fs.FileMode = 0644
	ModeExecutable fs.FileMode = 0755
	ModeDir        fs.FileMode = 0755
)

// Artifact is a configuration file written into the target project folder.
// Path is relative to the project folder and uses forward slashes.
type Artifact struct {
	Path    string
	Content []byte
	// Executable marks hook scripts that need a+x after writing
	Executable bool
}

// String returns the artifact content as text
func (a Artifact) String() string {
	return string(a.Content)
}
