package main

import "github.com/opora-health/opora_backend/cmd"

func main() {
	cmd.Execute()
}
