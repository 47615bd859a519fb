// Command txcodec transcodes scripts and transactions between hex, ASM and JSON,
// and can serve the same operations over HTTP.
package main

import (
	"fmt"
	"os"
)

func main() {
	app := newApp(os.Stdout)

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
