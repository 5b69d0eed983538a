package main

import "github.com/noahwilliamshaffer/resumesite/internal/cli"

func main() {
	cli.Execute()
}
