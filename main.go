package main

import (
	"os"

	"github.com/Skediaio/literal-sql/cli"
)

func main() {
	if err := cli.Execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
