package main

import (
	"os"

	"github.com/lunisolar/nelsc/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
