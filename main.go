package main

import (
	"os"

	"github.com/leonardinius/floatdiff/cmd"
)

func main() {
	app := cmd.NewFloatDiffApp()
	os.Exit(app.Main(os.Args[1:]))
}
