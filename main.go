package main

import (
	"os"

	"github.com/gh1224/kanaflash/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
