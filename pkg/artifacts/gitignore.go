package artifacts

import (
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/types"
)

// GitIgnore keeps the dependency cache out of version control
func GitIgnore() types.Artifact {
	return types.Artifact{
		Path:    GitIgnorePath,
		Content: []byte(DependencyCacheDir + "\n"),
	}
}
