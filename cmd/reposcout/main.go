package main

import "reposcout/internal/cli"

func main() {
	cli.Execute()
}
