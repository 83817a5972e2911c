package main

import (
	"github.com/jjtimmons/goeis/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
