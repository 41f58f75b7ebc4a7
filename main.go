// main is the entry point for the debtspot CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/debtspot/cmd"
	"github.com/huangsam/debtspot/internal/iocache"
)

func main() {
	cmd.SetCacheManager(iocache.Manager)

	err := cmd.Execute()
	iocache.CloseCaching()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
