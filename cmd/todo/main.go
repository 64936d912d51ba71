package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/Makepad-fr/tada/internal/cli"
	"github.com/Makepad-fr/tada/internal/ui"
)

func main() {
	opt, args, err := cli.ParseFlags(os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		cli.PrintHelp(os.Stdout)
		os.Exit(0)
	}
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(2)
	}
	cli.ApplyDisplay(opt)

	if len(args) == 0 {
		cli.PrintHelp(os.Stderr)
		os.Exit(2)
	}

	code := cli.Run(args, opt)
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
