// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"xir/repl"
)

func main() {
	repl.Start(os.Stdout, os.Stdout, os.Stdin)
}
