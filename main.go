package main

import "github.com/roveo/dirnav/cmd"

func main() {
	cmd.Execute()
}
