// Command quick runs variant scenarios and renders typed property values.
package main

import (
	"os"

	"github.com/mesh-intelligence/quick/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
