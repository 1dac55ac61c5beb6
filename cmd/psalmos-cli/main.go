package main

import (
	"github.com/psalmos/web/cmd/psalmos-cli/cmd"
)

func main() {
	cmd.Execute()
}
