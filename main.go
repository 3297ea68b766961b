// main holds the entry logic for the trustspot CLI.
package main

import (
	"os"

	"github.com/huangsam/trustspot/cmd"
	"github.com/huangsam/trustspot/internal/contract"
	"github.com/huangsam/trustspot/internal/iocache"
)

// main is the entry point for the trustspot analyzer.
// All command wiring lives in the cmd package; this function only connects
// the persistence layer and handles process-level cleanup.
func main() {
	defer iocache.CloseStores()

	cmd.SetStoreManager(iocache.Manager)

	err := cmd.Execute()

	if profErr := cmd.StopProfiling(); profErr != nil {
		contract.LogWarn("Failed to stop profiling", profErr)
	}

	if err != nil {
		contract.LogWarn("Command failed", err)
		iocache.CloseStores()
		os.Exit(1)
	}
}
