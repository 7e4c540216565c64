package main

import "github.com/OpenTraceLab/OpenTraceIES/cmd/ies/cmd"

func main() {
	cmd.Execute()
}
