package main

import "github.com/Skotchmaster/order_management/cmd/dashboard/commands"

func main() {
	commands.Execute()
}
