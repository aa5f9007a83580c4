package artifacts

// Artifact paths, relative to the project folder
const (
	GitIgnorePath       = ".gitignore"
	SpellCheckerPath    = "cspell.json"
	CommitLintPath      = "commitlint.config.js"
	CommitMsgHookPath   = ".husky/commit-msg"
	LinterPath          = ".eslintrc.js"
	LinterIgnorePath    = ".eslintignore"
	FormatterPath       = ".prettierrc"
	FormatterIgnorePath = ".prettierignore"
	LintStagedPath      = ".lintstagedrc"
	PreCommitHookPath   = ".husky/pre-commit"
	ReleasePath         = ".releaserc.json"
)

// DependencyCacheDir is the directory every ignore list excludes
const DependencyCacheDir = "node_modules"
