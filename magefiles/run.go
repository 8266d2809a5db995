//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Opens a window and plays the sample level.
func (Run) Catapult() error {
	fmt.Println("Run catapult...")
	if _, err := executeCmd("go", withArgs("run", ".", "-config", "catapult.toml"), withStream()); err != nil {
		return err
	}
	return nil
}

// Prints the decoded config and level.
func (Run) Dump() error {
	_, err := executeCmd("go", withArgs("run", ".", "-config", "catapult.toml", "-dump"), withStream())
	return err
}
