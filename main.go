package main

import (
	"github.com/mj1618/axtree/cmd"

	_ "github.com/mj1618/axtree/internal/platform/darwin"
)

func main() {
	cmd.Execute()
}
