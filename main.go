package main

import "mlguide/internal/cli"

func main() {
	cli.Execute()
}
