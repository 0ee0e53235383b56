package main

import (
	"github.com/sanger-pathogens/visiogen/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
