// Command savekeeper is a backup manager for Hollow Knight save files.
package main

import "github.com/backmassage/savekeeper/internal/cli"

func main() {
	cli.Execute()
}
