// Command admin-create generates admin credentials for the API. The printed
// hash goes into ADMIN_PASSWORD_HASH so the plain password never has to be
// stored in the environment.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"cargo-backend/internal/utilities"
)

// generateRandomString creates a random hex string of n bytes
func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal(err)
	}
	return hex.EncodeToString(bytes)
}

func main() {
	username := flag.String("username", "", "admin username (random when empty)")
	flag.Parse()

	if *username == "" {
		*username = "admin_" + generateRandomString(4)
	}
	password := generateRandomString(12)

	hashedPassword, err := utilities.HashPassword(password)
	if err != nil {
		log.Fatal("failed to hash password: ", err)
	}

	// Print credentials (only show plain password here!)
	fmt.Println("Admin credentials generated successfully!")
	fmt.Println("======================================")
	fmt.Printf("Username: %s\n", *username)
	fmt.Printf("Password: %s\n", password)
	fmt.Println("======================================")
	fmt.Println("Add to your environment:")
	fmt.Printf("ADMIN_USERNAME=%s\n", *username)
	fmt.Printf("ADMIN_PASSWORD_HASH='%s'\n", hashedPassword)

	os.Exit(0)
}
