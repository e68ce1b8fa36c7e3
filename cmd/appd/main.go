package main

import (
	"log"

	"github.com/NVIDIA/app-deployer/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
