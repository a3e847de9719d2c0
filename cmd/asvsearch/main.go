package main

import "asvsearch/internal/cli"

func main() {
	cli.Execute()
}
