package main

import (
	"os"

	"go.olrik.dev/tinit/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
