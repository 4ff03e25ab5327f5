package main

import "github.com/henderiw/rangeset/cmd/rangeset/cmd"

func main() {
	cmd.Execute()
}
