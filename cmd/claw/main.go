package main

import (
	"fmt"
	"os"

	"claw/internal/cmd"
	"claw/internal/termstyle"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", termstyle.Red("error:"), err)
		os.Exit(1)
	}
}
