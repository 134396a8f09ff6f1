package main

import "github.com/aretw0/vignes/internal/cli"

func main() {
	cli.Execute()
}
