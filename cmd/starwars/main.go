package main

import "starwars-api/cmd/starwars/commands"

func main() {
	commands.Execute()
}
