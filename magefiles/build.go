//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds every package in the module.
func (Build) All() error {
	if _, err := executeCmd("go", withArgs("build", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Builds the scene inspection tool into bin/lina.
func (Build) Tool() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/lina", "."), withStream()); err != nil {
		return err
	}
	return nil
}

type Test mg.Namespace

// Runs go vet and the full test suite.
func (Test) Unit() error {
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}
