package main

import "github.com/mkarppi/openshelf/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
