package main

import "github.com/edp1096/spicedeck/cmd/spicedeck/cmd"

func main() {
	cmd.Execute()
}
