package main

import (
	"os"

	"github.com/go-i2p/go-confighandler/lib/cli"
)

func main() {
	os.Exit(cli.Main())
}
