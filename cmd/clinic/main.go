package main

import "github.com/dkittle/Jane-clinic-exercise/internal/cli"

func main() {
	cli.Execute()
}
