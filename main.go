package main

import "github.com/Antdol/LittleLemonAPI/commands"

func main() {
	commands.Execute()
}
