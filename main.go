package main

import "github.com/mintpadhq/mintpad/cmd"

func main() {
	cmd.Execute()
}
