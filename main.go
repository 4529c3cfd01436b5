package main

import "github.com/mkellett/spawnclock/cmd"

func main() {
	cmd.Execute()
}
