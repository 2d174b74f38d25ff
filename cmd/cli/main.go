// Package main implements the taskapp CLI tool.
// It provides commands for signing in and managing tasks and user profiles.
package main

import "github.com/taskapp/taskapp/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
