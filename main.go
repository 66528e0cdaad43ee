// Package main is the entry point for the covsight CLI.
package main

import "covsight.dev/pkg/covsight/cmd"

func main() {
	cmd.Execute()
}
