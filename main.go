package main

import "furniture-store/cmd"

func main() {
	cmd.Execute()
}
