package main

import "github.com/meridianapp/swiftmap/internal/cli"

func main() {
	cli.Execute()
}
