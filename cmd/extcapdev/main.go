package main

import (
	"fmt"
	"os"

	"github.com/btsnoop/extcapdev/internal/interfaces/cli"
)

func main() {
	container, err := cli.NewContainer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	cli.Execute(container)
}
