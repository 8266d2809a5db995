//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Compiles the catapult binary into bin/.
func (Build) Catapult() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/catapult", "."), withStream()); err != nil {
		return err
	}
	return nil
}

type Test mg.Namespace

// Runs the unit tests of every package.
func (Test) Unit() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Plays the sample level headless as a smoke test.
func (Test) Headless() error {
	_, err := executeCmd("go", withArgs("run", ".", "-headless", "-frames", "3600"), withStream())
	return err
}
