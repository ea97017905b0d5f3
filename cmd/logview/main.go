// logview - configurable log parser and viewer
//
// logview decomposes semi-structured text logs into typed fields according to
// a user-editable schema, classifies values against declarative color rules,
// and filters entries with typed multi-operator predicates.
package main

import (
	"os"

	"github.com/AndrewKWatts/LogViewer/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
