package artifacts

import (
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/config"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/types"
)

// ChangelogFile is generated by the changelog plugin in the jira flavor
const ChangelogFile = "CHANGELOG.md"

// ReleaseCommitMessage is the semantic-release template for the commit
// pushed back by @semantic-release/git
const ReleaseCommitMessage = "chore(release): ${nextRelease.version} [skip ci]\n\n${nextRelease.notes}"

// Plugin is one semantic-release plugin entry. Entries without options
// render as a bare name, others as [name, options].
type Plugin struct {
	Name     string
	Options  object
	Disabled bool
}

// MarshalJSON implements json.Marshaler
func (p Plugin) MarshalJSON() ([]byte, error) {
	if p.Options == nil {
		return marshalCompact(p.Name)
	}
	return marshalCompact([]interface{}{p.Name, p.Options})
}

// ReleasePlugins returns every plugin entry for cfg, disabled ones included
func ReleasePlugins(cfg *config.Config) []Plugin {
	plugins := []Plugin{
		{Name: "@semantic-release/commit-analyzer"},
		{Name: "@semantic-release/release-notes-generator"},
	}
	if cfg.IsJira() {
		plugins = append(plugins,
			Plugin{Name: "@semantic-release/changelog", Options: object{
				{"changelogFile", ChangelogFile},
			}},
		)
	}
	// Publishing to the registry stays off until the package is public.
	plugins = append(plugins, Plugin{Name: "@semantic-release/npm", Disabled: true})
	if cfg.IsJira() {
		plugins = append(plugins,
			Plugin{Name: "@semantic-release/git", Options: object{
				{"assets", []string{ChangelogFile, "package.json"}},
				{"message", ReleaseCommitMessage},
			}},
		)
	}
	return plugins
}

// enabledPlugins drops disabled entries
func enabledPlugins(plugins []Plugin) []Plugin {
	out := make([]Plugin, 0, len(plugins))
	for _, p := range plugins {
		if !p.Disabled {
			out = append(out, p)
		}
	}
	return out
}

// Release renders .releaserc.json
func Release(cfg *config.Config) (types.Artifact, error) {
	rc := object{{"branches", []string{cfg.DefaultBranch}}}
	if cfg.IsJira() {
		rc = append(rc, member{"ci", false})
	}
	rc = append(rc,
		member{"plugins", enabledPlugins(ReleasePlugins(cfg))},
		member{"repositoryUrl", cfg.RemoteURL},
	)

	content, err := encodeJSON(rc)
	if err != nil {
		return types.Artifact{}, err
	}
	return types.Artifact{Path: ReleasePath, Content: content}, nil
}
