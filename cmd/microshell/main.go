package main

import "github.com/kcaldas/microshell/cmd/cli"

func main() {
	cli.Execute()
}
