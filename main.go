package main

import "github.com/harnessline/corral/cmd"

func main() {
	cmd.Execute()
}
