package main

import "go.rowstore/internal/cli"

func main() {
	cli.Execute()
}
