package main

import "github.com/itsmostafa/segview/cmd"

func main() {
	cmd.Execute()
}
