package main

import "github.com/sungeunbae/cascade-submit/cmd"

func main() {
	cmd.Execute()
}
