package main

import (
	"github.com/NickHolt/unique-chromosome-solver/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
