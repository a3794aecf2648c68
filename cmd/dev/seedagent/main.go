package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"agencydesk/pkg/config"
	"agencydesk/pkg/db"
)

// Dev tool: creates (or re-keys) a back-office agent so there is a first
// login after migrations.
//
//	go run ./cmd/dev/seedagent -email ops@example.com -name "Ops" -password secret
func main() {
	var (
		email    = flag.String("email", "", "agent email (required)")
		name     = flag.String("name", "", "agent display name (required)")
		password = flag.String("password", "", "agent password (required)")
	)
	flag.Parse()

	if *email == "" || *name == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "-email, -name and -password are required")
		os.Exit(2)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := db.Open(ctx, config.Load())
	if err != nil {
		fmt.Fprintf(os.Stderr, "db open: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	const q = `
INSERT INTO agents (email, name, password_hash)
VALUES ($1, $2, $3)
ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, password_hash = EXCLUDED.password_hash, active = TRUE
RETURNING id
`
	var id string
	if err := pool.QueryRow(ctx, q, *email, *name, string(hash)).Scan(&id); err != nil {
		fmt.Fprintf(os.Stderr, "seed agent: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("agent %s ready (%s)\n", id, *email)
}
