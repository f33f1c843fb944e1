// Package main is the entry point for the westupdate CLI.
//
// westupdate pins the revision of one project in a west manifest, for use
// in CI pipelines that bump firmware dependencies.
package main

import "github.com/ajxudir/westupdate/cmd"

func main() {
	cmd.Execute()
}
