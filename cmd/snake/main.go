package main

import "github.com/Abhisg5/snakeAPI/cmd/snake/commands"

func main() {
	commands.Execute()
}
