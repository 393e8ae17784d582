// Command snapdiff extracts element descriptors from two HTML snapshots
// and prints a severity-ranked visual-regression comparison between them.
package main

import "github.com/snapdiff/snapdiff/cmd/snapdiff/command"

func main() {
	command.Execute()
}
