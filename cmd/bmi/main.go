// Package main is the entry point for the BMI tracker.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jwulff/bmi-go/internal/bmi"
)

func main() {
	os.Exit(run())
}

func run() int {
	c := newCLI(os.Stdin, os.Stdout, os.Stderr)
	defer c.close()

	if err := c.rootCmd().ExecuteContext(context.Background()); err != nil {
		// Input errors have already been shown to the user by the form.
		if !bmi.IsInputError(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
