package main

import "github.com/fieldline/fieldline/cmd"

func main() {
	cmd.Execute()
}
