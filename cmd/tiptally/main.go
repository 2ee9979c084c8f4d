package main

import "tiptally/internal/cli"

func main() {
	cli.Execute()
}
