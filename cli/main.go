package main

import (
	"os"

	"github.com/soniclang/sonic/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
