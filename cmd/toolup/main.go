package main

import "toolup/internal/cli"

func main() {
	cli.Execute()
}
