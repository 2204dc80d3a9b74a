package main

import "github.com/gaurav-prasanna/tablepipe/cmd"

func main() {
	cmd.Execute()
}
