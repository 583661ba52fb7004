package main

import (
	"fmt"
	"os"

	"github.com/teranos/condax/cmd/condax/commands"
	"github.com/teranos/condax/errors"
	"github.com/teranos/condax/logger"
)

func main() {
	defer logger.Cleanup()

	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
