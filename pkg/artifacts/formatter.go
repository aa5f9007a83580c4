package artifacts

import (
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/types"
)

var prettierOptions = object{
	{"semi", true},
	{"trailingComma", "es5"},
	{"printWidth", 120},
	{"singleQuote", true},
	{"arrowParens", "always"},
	{"proseWrap", "preserve"},
}

// Formatter renders .prettierrc and .prettierignore
func Formatter() ([]types.Artifact, error) {
	content, err := encodeJSON(prettierOptions)
	if err != nil {
		return nil, err
	}
	return []types.Artifact{
		{Path: FormatterPath, Content: content},
		{Path: FormatterIgnorePath, Content: []byte(DependencyCacheDir + "/**\n")},
	}, nil
}
