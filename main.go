package main

import "github.com/FluidXR/adbatch/cmd"

func main() {
	cmd.Execute()
}
