// Command cardcheck classifies, validates and formats card numbers from the
// command line.
//
//	cardcheck check 4111111111111111 378282246310005
//	cardcheck -format json validate visa 4111111111111111
//	cardcheck format -sep " " 378282246310005
//	cardcheck check-digit 411111111111111
//	cardcheck networks
//
// validate exits with status 1 when the number is not valid for the network.
// Usage errors exit with status 2.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
