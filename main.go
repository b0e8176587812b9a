package main

import (
	"os"

	"github.com/scem/paramrename/internal/cmd"
)

func main() {
	code := cmd.Execute()

	os.Exit(code)
}
