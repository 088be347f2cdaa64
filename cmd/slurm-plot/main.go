package main

import (
	"os"

	"slurm-plot/cmd/slurm-plot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
