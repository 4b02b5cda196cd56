package main

import "github.com/theirongolddev/relchart/cmd"

func main() {
	cmd.Execute()
}
