package main

import "food-order/cmd"

func main() {
	cmd.Execute()
}
