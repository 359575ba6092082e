package main

import "github.com/shotbridge/shotbridge/cmd/shotbridge/commands"

func main() {
	commands.Execute()
}
