package main

import "github.com/luciopaiva/glacier-retrieve/cmd"

func main() {
	cmd.Execute()
}
