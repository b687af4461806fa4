package main

import "dipgauge/internal/cli"

func main() {
	cli.Execute()
}
