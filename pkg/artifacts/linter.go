package artifacts

import (
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/types"
)

const eslintConfig = `module.exports = {
  env: {
    commonjs: true,
    es2021: true,
    node: true,
  },
  extends: ["airbnb-base"],
  overrides: [
    {
      files: ["*.md"],
      parser: "eslint-plugin-markdownlint/parser",
      extends: ["plugin:markdownlint/recommended"]
    }
  ],
  parserOptions: {
    ecmaVersion: "latest",
  },
  rules: {},
};
`

const eslintIgnore = `coverage/*
node_modules/*
build/*
.eslintrc.js
`

// Linter renders .eslintrc.js and .eslintignore
func Linter() []types.Artifact {
	return []types.Artifact{
		{Path: LinterPath, Content: []byte(eslintConfig)},
		{Path: LinterIgnorePath, Content: []byte(eslintIgnore)},
	}
}
