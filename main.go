package main

import (
	"qrtransfer/cmd"
)

func main() {
	cmd.Execute()
}
