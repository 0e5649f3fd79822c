package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MacroPower/mcsgraph/cmd/mcsgraph/commands"
)

const (
	cmdName = "mcsgraph"

	shortDesc = "Generate Mermaid dependency diagrams from k0rdent Helm charts."
	longDesc  = `The mcsgraph Command Line Interface (CLI).

mcsgraph renders a Helm chart, extracts the MultiClusterService and
ServiceTemplate resources from the rendered output, and generates a Mermaid
flowchart describing the dependencies between them.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
