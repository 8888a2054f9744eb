// Command orthopoly evaluates Legendre and Hermite polynomials at
// arbitrary precision, correctly rounded, from the command line.
//
// ⚙️ Usage:
//
//	orthopoly legendre --degree 1024 --prec 53 0.5
//	orthopoly hermite  --degree 3 --prec 53 --mode zero 3.49376
//	orthopoly hash 0.5
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "orthopoly:", err)
		os.Exit(1)
	}
}
