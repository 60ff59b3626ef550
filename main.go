package main

import (
	"log"

	"github.com/zvonler/vex/cli"
)

func main() {
	vexCmd := cli.NewCommand()
	if err := vexCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
