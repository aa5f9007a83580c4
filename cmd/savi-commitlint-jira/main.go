package main

import (
	"os"

	"github.com/valassis-fcalle/savi-project-bootstrap/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewPatchCmd()))
}
