package main

import (
	"os"

	"todolist/cli"
)

func main() {
	os.Exit(cli.Execute())
}
