package artifacts

import (
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/config"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/types"
)

// SpellCheckerWords is the cspell allow-list shared by every flavor.
// Entries are case-sensitive and written as-is.
var SpellCheckerWords = []string{
	"capi",
	"commitlint",
	"fcalle",
	"imagemin",
	"markdownlint",
	"parens",
	"postcss",
	"savi",
	"stylelint",
	"valassis",
}

// SpellCheckerWordList returns the allow-list for cfg. The jira flavor
// appends the ticket prefix so references like SAVI-123 pass.
func SpellCheckerWordList(cfg *config.Config) []string {
	words := make([]string, 0, len(SpellCheckerWords)+1)
	words = append(words, SpellCheckerWords...)
	if cfg.IsJira() {
		words = append(words, cfg.TicketPrefix)
	}
	return words
}

// SpellChecker renders cspell.json
func SpellChecker(cfg *config.Config) (types.Artifact, error) {
	content, err := encodeJSON(object{
		{"ignorePaths", []string{DependencyCacheDir}},
		{"words", SpellCheckerWordList(cfg)},
	})
	if err != nil {
		return types.Artifact{}, err
	}
	return types.Artifact{Path: SpellCheckerPath, Content: content}, nil
}
