// Command figbridge builds scene trees from cached Figma file responses.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
