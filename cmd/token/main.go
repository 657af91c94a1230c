// Command token issues an access token bound to a company, for integrations that call the API
// without an interactive login.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/quanamco/payroll-edi/internal/config"
	"github.com/quanamco/payroll-edi/internal/pkg/jwt"
)

func main() {
	userID := flag.String("user", "", "user id placed in the user_id claim")
	companyID := flag.String("company", "", "company id placed in the company_id claim")
	flag.Parse()

	if *companyID == "" {
		fmt.Fprintln(os.Stderr, "-company is required")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	token, expiresAt, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration).GenerateAccessToken(*userID, *companyID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error issuing token:", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintln(os.Stderr, "expires at", time.Unix(expiresAt, 0).UTC().Format(time.RFC3339))
}
