// SPDX-License-Identifier: MIT

// Command wclique solves maximum-weight clique and independent set problems
// stored as YAML and generates random problem files.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/wclique/logger"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "wclique",
		HelpName: "wclique",
		Usage:    "exact maximum-weight clique / independent set solver",
		Flags: []cli.Flag{
			&logger.LogLevelFlag,
		},
		Commands: []*cli.Command{
			&cliqueCommand,
			&independentSetCommand,
			&batchCommand,
			&generateCommand,
		},
	}
}
