package main

import "github.com/rvalero/agenda-cli/cmd"

func main() {
	cmd.Execute()
}
