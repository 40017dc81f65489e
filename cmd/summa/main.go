// Command summa prints "done". Its sub-commands sum and tabulate functions
// over integer ranges; run `summa help` for details.
package main

import "github.com/npillmayer/summa/internal/cli"

func main() {
	cli.Execute()
}
