package main

import "github.com/han-tyumi/secret-santa/cmd"

func main() {
	cmd.Execute()
}
