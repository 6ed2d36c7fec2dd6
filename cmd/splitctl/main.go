package main

import "github.com/mmynk/splitledger/cmd/splitctl/cmd"

func main() {
	cmd.Execute()
}
