package main

import "github.com/OpenTraceLab/CircuitTikZ/cmd/ctz/cmd"

func main() {
	cmd.Execute()
}
