package main

import "github.com/dmather/lhl-data/internal/cli"

func main() {
	cli.Execute()
}
