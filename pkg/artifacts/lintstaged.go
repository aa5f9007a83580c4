package artifacts

import (
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/config"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/types"
)

// Markdown globs. The jira flavor skips the changelog semantic-release writes.
const (
	markdownGlob             = "*.md"
	markdownWithoutChangelog = "!(CHANGELOG).md"
)

const preCommitHook = `#!/usr/bin/env sh
. "$(dirname "$0")/_/husky.sh"

npx lint-staged
`

// LintStagedRules returns the glob to command mapping, in evaluation order
func LintStagedRules(cfg *config.Config) object {
	markdown := markdownGlob
	if cfg.IsJira() {
		markdown = markdownWithoutChangelog
	}
	return object{
		{"*", "cspell --no-summary --no-progress"},
		{markdown, "markdownlint --fix"},
		{"*.{js,jsx,ts,tsx,html,css}", []string{"prettier --write", "eslint --fix"}},
		{"*.{png,jpeg,jpg,gif,svg}", "imagemin-lint-staged"},
		{"*.scss", []string{"postcss --config path/to/your/config --replace", "stylelint"}},
	}
}

// LintStaged renders .lintstagedrc and the pre-commit hook
func LintStaged(cfg *config.Config) ([]types.Artifact, error) {
	content, err := encodeJSON(LintStagedRules(cfg))
	if err != nil {
		return nil, err
	}
	return []types.Artifact{
		{Path: LintStagedPath, Content: content},
		{Path: PreCommitHookPath, Content: []byte(preCommitHook), Executable: true},
	}, nil
}
