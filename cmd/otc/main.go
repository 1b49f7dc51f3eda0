package main

import "github.com/OpenTraceLab/OpenTraceCap/cmd/otc/cmd"

func main() {
	cmd.Execute()
}
