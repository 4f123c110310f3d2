package main

import (
	"os"

	"github.com/hashicorp-forge/soundboard/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
