package main

import "github.com/lumenwatch/tower/cmd"

func main() {
	cmd.Execute()
}
