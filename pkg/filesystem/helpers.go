package filesystem

import (
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/types"
)

// MakeExecutable adds the execute bit for user, group and others (chmod a+x)
func MakeExecutable(fsys types.FS, path string) error {
	info, err := fsys.Stat(path)
	if err != nil {
		return err
	}
	return fsys.Chmod(path, info.Mode().Perm()|0111)
}
