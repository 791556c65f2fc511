package main

import "github.com/nateranda/beampy/cmd"

func main() {
	cmd.Execute()
}
