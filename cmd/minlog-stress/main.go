package main

import "github.com/wayneeseguin/minlog/cmd/minlog-stress/cmd"

func main() {
	cmd.Execute()
}
