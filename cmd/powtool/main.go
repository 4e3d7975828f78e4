// powtool inspects Trinity proof-of-work data: compact difficulty bits,
// block work values and retarget behavior.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/urfave/cli.v1"

	"github.com/Action-Committee/Trinity/params"
)

var (
	gitCommit string
	gitDate   string
	app       = &cli.App{
		Name:    filepath.Base(os.Args[0]),
		Usage:   "Trinity proof-of-work inspection tool",
		Version: params.VersionWithCommit(gitCommit, gitDate),
		Writer:  os.Stdout,
	}
)

func init() {
	app.CommandNotFound = func(ctx *cli.Context, cmd string) {
		fmt.Fprintf(os.Stderr, "No such command: %s\n", cmd)
		os.Exit(1)
	}
	app.Commands = []cli.Command{
		decodeCommand,
		encodeCommand,
		workCommand,
		nextbitsCommand,
	}
}

func main() {
	exit(app.Run(os.Args))
}

func exit(err interface{}) {
	if err == nil {
		os.Exit(0)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
