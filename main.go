package main

import (
	"fmt"
	"os"

	"github.com/Jinsoo1210/carrot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
