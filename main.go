package main

import "github.com/cityhall-dev/licensing-management/cmd"

func main() {
	cmd.Execute()
}
