package main

import "github.com/robalobadob/langgame/internal/cli"

func main() {
	cli.Execute()
}
