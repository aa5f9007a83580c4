package cli

// Message constants
const (
	MsgBootstrapShort = "Scaffold the tooling of a new JavaScript project"
	MsgBootstrapLong  = `savi-bootstrap deletes and recreates the project folder, initializes npm
and git inside it, installs the linting and release toolchain and writes the
configuration for eslint, prettier, cspell, commitlint, husky, lint-staged
and semantic-release.

Run "savi-bootstrap explain" for the full list of steps and files.`
	MsgBootstrapExample = `  savi-bootstrap                              # scaffold ./savi-project-bootstrap
  savi-bootstrap --folder my-app --flavor jira
  savi-bootstrap --dry-run                    # show what would run and be written
  SAVI_TOOLS__NPM=pnpm savi-bootstrap -vv`

	MsgPatchShort = "Switch commitlint to the jira rule plugin and preset"
	MsgPatchLong  = `savi-commitlint-jira installs commitlint-plugin-jira-rules and
commitlint-config-jira in an already bootstrapped project folder and replaces
commitlint.config.js so commit messages are checked against jira rules.`

	MsgVersionShort = "Print version information"
	MsgConfigShort  = "Print the effective configuration as TOML"
	MsgExplainShort = "Describe every step and generated file"
	MsgManShort     = "Generate man pages"

	MsgBootstrapDone = "Project ready in %s (%d steps, %d files written)"
	MsgPatchDone     = "commitlint now uses jira rules in %s"
	MsgDryRunDone    = "Dry run: nothing was executed or written"
	MsgManDone       = "Man pages written to %s"
)
