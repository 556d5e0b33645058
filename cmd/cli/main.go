package main

import "github.com/mchmarny/gauge/pkg/cli"

func main() {
	cli.Execute()
}
