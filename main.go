// Package main is the entry point for the navhdr CLI.
package main

import "aeronib.com/pkg/navhdr/cmd"

func main() {
	cmd.Execute()
}
