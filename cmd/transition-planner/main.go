package main

import "transition-planner/internal/cli"

func main() {
	cli.Execute()
}
