package artifacts

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/config"
)

func classic() *config.Config {
	return config.Default()
}

func jira() *config.Config {
	cfg := config.Default()
	cfg.Flavor = config.FlavorJira
	return cfg
}

func TestGitIgnore(t *testing.T) {
	a := GitIgnore()
	assert.Equal(t, ".gitignore", a.Path)
	assert.Equal(t, "node_modules\n", a.String())
	assert.False(t, a.Executable)
}

func TestSpellChecker(t *testing.T) {
	t.Run("classic", func(t *testing.T) {
		a, err := SpellChecker(classic())
		require.NoError(t, err)

		want := `{
  "ignorePaths": [
    "node_modules"
  ],
  "words": [
    "capi",
    "commitlint",
    "fcalle",
    "imagemin",
    "markdownlint",
    "parens",
    "postcss",
    "savi",
    "stylelint",
    "valassis"
  ]
}
`
		assert.Equal(t, "cspell.json", a.Path)
		assert.Equal(t, want, a.String())
	})

	t.Run("jira appends the ticket prefix", func(t *testing.T) {
		a, err := SpellChecker(jira())
		require.NoError(t, err)

		var parsed struct {
			Words []string `json:"words"`
		}
		require.NoError(t, json.Unmarshal(a.Content, &parsed))
		assert.Equal(t, append(append([]string{}, SpellCheckerWords...), "SAVI"), parsed.Words)
	})

	t.Run("words are not deduplicated", func(t *testing.T) {
		cfg := jira()
		cfg.TicketPrefix = "savi"
		words := SpellCheckerWordList(cfg)
		assert.Len(t, words, len(SpellCheckerWords)+1)
		assert.Equal(t, "savi", words[len(words)-1])
	})
}

func TestCommitLint(t *testing.T) {
	t.Run("classic", func(t *testing.T) {
		arts := CommitLint(classic())
		require.Len(t, arts, 2)

		assert.Equal(t, "commitlint.config.js", arts[0].Path)
		assert.Equal(t, "module.exports = { extends: ['@commitlint/config-conventional'] };\n", arts[0].String())
		assert.False(t, arts[0].Executable)

		assert.Equal(t, ".husky/commit-msg", arts[1].Path)
		assert.True(t, arts[1].Executable)
		assert.True(t, strings.HasPrefix(arts[1].String(), "#!/bin/sh\n"))
		assert.Contains(t, arts[1].String(), `npx --no -- commitlint --edit "${1}"`)
		assert.Contains(t, arts[1].String(), `npx --no -- cspell --no-summary --no-progress "${1}"`)
	})

	t.Run("jira requires ticket references", func(t *testing.T) {
		cfg := jira()
		cfg.TicketPrefix = "CAPI"
		content := CommitLint(cfg)[0].String()

		assert.Contains(t, content, "extends: ['@commitlint/config-conventional']")
		assert.Contains(t, content, "issuePrefixes: ['CAPI-']")
		assert.Contains(t, content, "'references-empty': [2, 'never']")
		assert.NotContains(t, content, "TICKET_PREFIX")
	})
}

func TestCommitLintJira(t *testing.T) {
	a := CommitLintJira()
	assert.Equal(t, CommitLintPath, a.Path)
	assert.Contains(t, a.String(), `plugins: ["commitlint-plugin-jira-rules"]`)
	assert.Contains(t, a.String(), `extends: ["jira"]`)
	assert.NotContains(t, a.String(), ConventionalPreset)
}

func TestLinter(t *testing.T) {
	arts := Linter()
	require.Len(t, arts, 2)

	rc := arts[0].String()
	assert.Equal(t, ".eslintrc.js", arts[0].Path)
	assert.Contains(t, rc, "es2021: true")
	assert.Contains(t, rc, `extends: ["airbnb-base"]`)
	assert.Contains(t, rc, `parser: "eslint-plugin-markdownlint/parser"`)
	assert.Contains(t, rc, `ecmaVersion: "latest"`)
	assert.Contains(t, rc, "rules: {},")

	assert.Equal(t, ".eslintignore", arts[1].Path)
	assert.Equal(t, "coverage/*\nnode_modules/*\nbuild/*\n.eslintrc.js\n", arts[1].String())
}

func TestFormatter(t *testing.T) {
	arts, err := Formatter()
	require.NoError(t, err)
	require.Len(t, arts, 2)

	want := `{
  "semi": true,
  "trailingComma": "es5",
  "printWidth": 120,
  "singleQuote": true,
  "arrowParens": "always",
  "proseWrap": "preserve"
}
`
	assert.Equal(t, ".prettierrc", arts[0].Path)
	assert.Equal(t, want, arts[0].String())
	assert.Equal(t, ".prettierignore", arts[1].Path)
	assert.Equal(t, "node_modules/**\n", arts[1].String())
}

func TestLintStaged(t *testing.T) {
	t.Run("classic keeps key order", func(t *testing.T) {
		arts, err := LintStaged(classic())
		require.NoError(t, err)
		require.Len(t, arts, 2)

		want := `{
  "*": "cspell --no-summary --no-progress",
  "*.md": "markdownlint --fix",
  "*.{js,jsx,ts,tsx,html,css}": [
    "prettier --write",
    "eslint --fix"
  ],
  "*.{png,jpeg,jpg,gif,svg}": "imagemin-lint-staged",
  "*.scss": [
    "postcss --config path/to/your/config --replace",
    "stylelint"
  ]
}
`
		assert.Equal(t, ".lintstagedrc", arts[0].Path)
		assert.Equal(t, want, arts[0].String())

		assert.Equal(t, ".husky/pre-commit", arts[1].Path)
		assert.True(t, arts[1].Executable)
		assert.Equal(t, "#!/usr/bin/env sh\n. \"$(dirname \"$0\")/_/husky.sh\"\n\nnpx lint-staged\n", arts[1].String())
	})

	t.Run("jira skips the changelog", func(t *testing.T) {
		arts, err := LintStaged(jira())
		require.NoError(t, err)

		content := arts[0].String()
		assert.Contains(t, content, `"!(CHANGELOG).md": "markdownlint --fix"`)
		assert.NotContains(t, content, `"*.md"`)
	})
}

func TestRelease(t *testing.T) {
	t.Run("classic", func(t *testing.T) {
		a, err := Release(classic())
		require.NoError(t, err)

		want := `{
  "branches": [
    "master"
  ],
  "plugins": [
    "@semantic-release/commit-analyzer",
    "@semantic-release/release-notes-generator"
  ],
  "repositoryUrl": "git@github.com:valassis-fcalle/savi-project-bootstrap-demo.git"
}
`
		assert.Equal(t, ".releaserc.json", a.Path)
		assert.Equal(t, want, a.String())
	})

	t.Run("jira", func(t *testing.T) {
		a, err := Release(jira())
		require.NoError(t, err)

		var parsed map[string]interface{}
		require.NoError(t, json.Unmarshal(a.Content, &parsed))

		assert.Equal(t, []interface{}{"master"}, parsed["branches"])
		assert.Equal(t, false, parsed["ci"])
		assert.Equal(t, []interface{}{
			"@semantic-release/commit-analyzer",
			"@semantic-release/release-notes-generator",
			[]interface{}{"@semantic-release/changelog", map[string]interface{}{"changelogFile": "CHANGELOG.md"}},
			[]interface{}{"@semantic-release/git", map[string]interface{}{
				"assets":  []interface{}{"CHANGELOG.md", "package.json"},
				"message": "chore(release): ${nextRelease.version} [skip ci]\n\n${nextRelease.notes}",
			}},
		}, parsed["plugins"])

		assert.Less(t, strings.Index(a.String(), `"ci"`), strings.Index(a.String(), `"plugins"`))
	})

	t.Run("npm publish stays listed but disabled", func(t *testing.T) {
		for _, cfg := range []*config.Config{classic(), jira()} {
			var found bool
			for _, p := range ReleasePlugins(cfg) {
				if p.Name == "@semantic-release/npm" {
					found = true
					assert.True(t, p.Disabled)
				}
			}
			assert.True(t, found)

			a, err := Release(cfg)
			require.NoError(t, err)
			assert.NotContains(t, a.String(), "@semantic-release/npm")
		}
	})
}

func TestDevDependencies(t *testing.T) {
	assert.Len(t, DevDependencies, 18)
	assert.Contains(t, DevDependencies, "eslint-config-airbnb-base@latest")
	assert.Contains(t, DevDependencies, "eslint-plugin-import@^2.25.2")
	assert.Contains(t, DevDependencies, "eslint@^8.2.0")
	assert.Equal(t, "@commitlint/cli", DevDependencies[0])
	assert.Equal(t, "semantic-release", DevDependencies[len(DevDependencies)-1])
}
