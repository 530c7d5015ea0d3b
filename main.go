// Package main is the entry point for the strs application.
package main

import (
	"github.com/samber/lo"
	"github.com/strs-cli/strs/cmd"
	"github.com/strs-cli/strs/config"
	"github.com/strs-cli/strs/log"
)

func main() {
	lo.Must0(config.Setup(""))
	lo.Must0(log.Setup())

	cmd.Execute()
}
