package main

import (
	"os"

	"github.com/passgen/passgen-go/internal/crypto"
)

func main() {
	if err := newRootCmd(crypto.NewGenerator(nil)).Execute(); err != nil {
		os.Exit(1)
	}
}
