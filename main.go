package main

import "github.com/encodeous/slotframe/cmd"

func main() {
	cmd.Execute()
}
