// Command nertsctl is the operator CLI for a SomeNerts database: schema
// migrations, owner account creation and read-only score reports.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	root, a := newRootCmd()
	if err := execute(context.Background(), root, a); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
