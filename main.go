package main

import "github.com/iksnae/playtime/cmd"

func main() {
	cmd.Execute()
}
