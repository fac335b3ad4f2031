package main

import "github.com/2beens/fittracker/cmd/fitctl/root"

func main() {
	root.Execute()
}
