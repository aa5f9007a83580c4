package artifacts

// DevDependencies is the tooling installed with npm install --save-dev.
// Order and version pins are part of the contract: airbnb-base tracks
// latest, eslint-plugin-import and eslint are pinned to the majors
// airbnb-base supports, everything else is unpinned.
var DevDependencies = []string{
	"@commitlint/cli",
	"@commitlint/config-conventional",
	"@semantic-release/changelog",
	"@semantic-release/git",
	"cspell",
	"eslint-config-airbnb-base@latest",
	"eslint-config-prettier",
	"eslint-plugin-import@^2.25.2",
	"eslint-plugin-markdownlint",
	"eslint-plugin-prettier",
	"eslint@^8.2.0",
	"husky",
	"lint-staged",
	"markdownlint",
	"markdownlint-cli",
	"nodemon",
	"prettier",
	"semantic-release",
}

// JiraDependencies are installed by the follow-up commitlint patch
var JiraDependencies = []string{
	"commitlint-plugin-jira-rules",
	"commitlint-config-jira",
}

// Script is a package.json script entry
type Script struct {
	Name    string
	Command string
}

// ReleaseScripts are registered in package.json by the release step
var ReleaseScripts = []Script{
	{Name: "release", Command: "semantic-release"},
	{Name: "release:dry", Command: "semantic-release --dry-run"},
}
