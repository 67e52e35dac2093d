// scripts/ads-auth/main.go
//
// Run this ONCE locally to authorize Google Ads access for a developer
// account and print the refresh token, without going through the web
// callback flow.
//
// Usage:
//   go run scripts/ads-auth/main.go
//
// It prints a browser URL, you log in with your Google account, paste
// the authorization code, and the refresh token is printed for use in
// configuration or manual credential seeding.

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/denissa4/ads-manager/pkg/googleauth"
)

func main() {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		log.Fatal("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set")
	}

	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		// Out-of-band style flow for desktop use.
		RedirectURL: "http://localhost",
		Scopes:      googleauth.Scopes,
		Endpoint:    google.Endpoint,
	}

	authURL := config.AuthCodeURL("state-token",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and sign in to Google:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	ctx := context.Background()
	tok, err := config.Exchange(ctx, code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	if tok.RefreshToken == "" {
		log.Fatal("No refresh token returned; revoke previous access and try again")
	}

	fmt.Println()
	fmt.Println("Refresh token:")
	fmt.Println(tok.RefreshToken)
}
