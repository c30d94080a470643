package main

import "github.com/rustyeddy/optrack/internal/cli"

func main() {
	cli.Execute()
}
