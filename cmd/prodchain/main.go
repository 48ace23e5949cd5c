// Command prodchain plans Factorio production chains.
//
//	prodchain optimize --config run.yaml [--either] [--json] [--verbose]
//	prodchain resources --recipes recipes.json [--mode expensive]
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		os.Exit(1)
	}
}
