package main

import "cypherlab/internal/cli"

func main() {
	cli.Execute()
}
