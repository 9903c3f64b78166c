package main

import "placehub/cmd/cli/command"

func main() {
	command.Execute()
}
