package main

import "preproc/cmd"

func main() {
	cmd.Execute()
}
