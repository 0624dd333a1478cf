// Command routesum summarizes routing pipeline result files offline.
package main

import (
	"fmt"
	"os"

	"route-summary-service/internal/cli"
)

func main() {
	if err := cli.Execute(os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
