package main

import "github.com/ctxgrep/ctxgrep/cmd"

func main() {
	cmd.Execute()
}
