package main

import "github.com/katalvlaran/dfafactor/internal/cli"

func main() {
	cli.Execute()
}
