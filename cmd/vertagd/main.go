package main

import (
	"log"

	"github.com/fineswap/vertag/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
