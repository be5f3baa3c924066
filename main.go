/*
Copyright © 2025 tieubaoca
*/
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/tieubaoca/motivate-be/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Error loading .env file:", err)
		os.Exit(1)
	}
}
