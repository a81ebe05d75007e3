package main

import (
	"log"

	"github.com/zephyrtronium/calc/cmd/calc/commands"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("calc: ")
	if err := commands.Execute(); err != nil {
		log.Fatal(err)
	}
}
