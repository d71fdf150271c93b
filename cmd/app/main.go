package main

import (
	"os"

	"github.com/Antonio-Sitoe/safe-zone-mobile/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
