package main

import "github.com/performai/pcfg/cmd"

func main() {
	cmd.Execute()
}
