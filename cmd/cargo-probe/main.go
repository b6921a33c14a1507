package main

import "cargo-probe/internal/cli"

func main() {
	cli.Execute()
}
