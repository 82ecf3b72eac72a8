package main

import "github.com/FluidXR/peripheral/cmd"

func main() {
	cmd.Execute()
}
