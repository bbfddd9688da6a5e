package main

import "dockerase/cmd"

func main() {
	cmd.Execute()
}
