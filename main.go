package main

import "darasa/commands"

func main() {
	commands.Execute()
}
