package artifacts

import (
	"strings"

	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/config"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/types"
)

// ConventionalPreset is the commitlint preset extended by the scaffold
const ConventionalPreset = "@commitlint/config-conventional"

const commitLintClassic = `module.exports = { extends: ['@commitlint/config-conventional'] };
`

const commitLintTicket = `module.exports = {
  extends: ['@commitlint/config-conventional'],
  parserPreset: {
    parserOpts: {
      issuePrefixes: ['TICKET_PREFIX-'],
    },
  },
  rules: {
    'references-empty': [2, 'never'],
  },
};
`

const commitLintJiraPlugin = `module.exports = {
  plugins: ["commitlint-plugin-jira-rules"],
  extends: ["jira"],
};
`

// The commit is rejected when either check exits non-zero.
const commitMsgHook = `#!/bin/sh
. "$(dirname "$0")/_/husky.sh"

npx --no -- commitlint --edit "${1}"
npx --no -- cspell --no-summary --no-progress "${1}"
`

// CommitLint renders commitlint.config.js and the commit-msg hook
func CommitLint(cfg *config.Config) []types.Artifact {
	content := commitLintClassic
	if cfg.IsJira() {
		content = strings.ReplaceAll(commitLintTicket, "TICKET_PREFIX", cfg.TicketPrefix)
	}
	return []types.Artifact{
		{Path: CommitLintPath, Content: []byte(content)},
		{Path: CommitMsgHookPath, Content: []byte(commitMsgHook), Executable: true},
	}
}

// CommitLintJira renders the commitlint config that uses the jira rule
// plugin and preset in place of the conventional preset
func CommitLintJira() types.Artifact {
	return types.Artifact{Path: CommitLintPath, Content: []byte(commitLintJiraPlugin)}
}
