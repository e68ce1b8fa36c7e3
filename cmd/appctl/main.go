package main

import (
	"github.com/NVIDIA/app-deployer/pkg/cli"
)

func main() {
	cli.Execute()
}
