package main

import "github.com/girlmathhq/girlmath/cmd"

func main() {
	cmd.Execute()
}
