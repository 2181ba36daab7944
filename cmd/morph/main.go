package main

import (
	"os"

	"github.com/viant/morph/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
