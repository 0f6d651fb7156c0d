package main

import (
	"github.com/mchmarny/scoremock/pkg/cli"
)

func main() {
	cli.Execute()
}
