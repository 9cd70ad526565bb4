package main

import (
	"log"

	"consulta/config"
	"consulta/helper"
)

func main() {
	cfg := config.Get()

	if err := helper.Seed(cfg); err != nil {
		log.Fatal(err)
	}
}
