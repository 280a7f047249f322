package main

import "github.com/harlequix/ecsim/cmd"

func main() {
	cmd.Execute()
}
