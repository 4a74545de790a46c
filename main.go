package main

import "github.com/beka-birhanu/gridwalk/cmd"

func main() {
	cmd.Execute()
}
