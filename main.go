package main

import "github.com/notargets/goscf/cmd"

func main() {
	cmd.Execute()
}
