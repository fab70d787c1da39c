//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Computes and prints the matrices for the default scene file.
func (Run) Scene() error {
	fmt.Println("Run scene tool...")
	if _, err := executeCmd("go", withArgs("run", ".", "-scene", "scene.toml"), withStream()); err != nil {
		return err
	}
	return nil
}

// Same as Scene but keeps watching the scene file for changes.
func (Run) Watch() error {
	fmt.Println("Run scene tool in watch mode...")
	if _, err := executeCmd("go", withArgs("run", ".", "-scene", "scene.toml", "-watch"), withStream()); err != nil {
		return err
	}
	return nil
}
