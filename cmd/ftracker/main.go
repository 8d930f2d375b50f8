package main

import (
	"fmt"
	"os"

	"github.com/lucasjlepore/fit-tracker/internal/cli"
	"github.com/lucasjlepore/fit-tracker/internal/config"
)

func main() {
	app := cli.NewApp(config.Load())
	if err := cli.NewRootCmd(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
