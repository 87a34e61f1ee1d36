package main

import "github.com/rybkr/canal/cmd"

func main() {
	cmd.Execute()
}
