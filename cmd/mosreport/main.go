package main

import "mosreport/cmd/mosreport/cmd"

func main() {
	cmd.Execute()
}
