package main

import "github.com/mimecorg/bc-gettext-utils/internal/cli"

func main() {
	cli.Execute()
}
