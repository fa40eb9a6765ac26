package main

import (
	"github.com/fallencrown/crown-cli/internal/cli"
)

func main() {
	cli.Execute()
}
