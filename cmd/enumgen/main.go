// Command enumgen writes managed enum declarations for package enums.
//
// Declare one enum inline, typically from a go:generate directive:
//
//	//go:generate go run github.com/on-the-ground/enum_ive_go/cmd/enumgen generate --type Color Red Green Blue
//
// or several from a YAML manifest:
//
//	enumgen generate --manifest enums.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
