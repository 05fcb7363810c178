package main

import "github.com/katalvlaran/fca"

// useLogic sets the process-scoped active logic named by the --logic flag.
func useLogic(name string) error {
	return fca.UseLogic(name)
}
