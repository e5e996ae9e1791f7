// Command hashpw prints a bcrypt hash for seeding users by hand.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"acorn/internal/infra/auth"
)

func main() {
	cost := flag.Int("cost", 10, "bcrypt cost")
	flag.Parse()

	// Read from stdin so the password stays out of shell history.
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil && password == "" {
		fmt.Fprintf(os.Stderr, "Error: read password: %v\n", err)
		os.Exit(1)
	}
	password = strings.TrimRight(password, "\r\n")

	hash, err := auth.NewBcryptHasherWithCost(*cost).Hash(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
