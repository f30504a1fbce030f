package main

import "github.com/pitwall/f1-calendar/internal/cli"

func main() {
	cli.Execute()
}
