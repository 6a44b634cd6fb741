package main

import "github.com/vanzue/bbmark/internal/cli"

func main() {
	cli.Execute()
}
