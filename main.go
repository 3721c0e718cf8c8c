package main

import "github.com/dotcommander/copyscore/cmd"

func main() {
	cmd.Execute()
}
