package main

import "folio/cmd"

// version is set by the release build via -ldflags.
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
