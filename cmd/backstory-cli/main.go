package main

import "github.com/nfrund/backstory/cmd/backstory-cli/cmd"

func main() {
	cmd.Execute()
}
