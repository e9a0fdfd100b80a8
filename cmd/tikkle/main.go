package main

import (
	"fmt"
	"os"
)

func main() {
	a := newApp(os.Stdin, os.Stdout)
	if err := a.cli().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, a.explain(err))
		os.Exit(1)
	}
}
