package main

import (
	"os"

	"github.com/speakeasy-api/schemadiff/cmd/schemadiff/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
