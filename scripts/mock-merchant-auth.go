//go:build ignore

// mock-merchant-auth.go - JWKS and token issuer for local merchant authentication
//
// Usage:
//   go run scripts/mock-merchant-auth.go
//
// Point the API server at it with
//   auth.jwks_url: http://localhost:8088/.well-known/jwks.json
//   auth.issuer:   http://localhost:8088
// The signing key is generated on start, so tokens do not survive a restart.

package main

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/0xNexuz/Tempocash/pkg/auth"
)

const (
	port     = 8088
	keyID    = "local-merchant-key"
	tokenTTL = 24 * time.Hour
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type issuer struct {
	key *rsa.PrivateKey
	url string
}

func main() {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		log.Fatalf("failed to generate signing key: %v", err)
	}
	iss := &issuer{key: key, url: fmt.Sprintf("http://localhost:%d", port)}

	http.HandleFunc("/.well-known/jwks.json", iss.handleJWKS)
	http.HandleFunc("/oauth/token", iss.handleToken)
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	addr := fmt.Sprintf(":%d", port)
	log.Printf("Mock merchant auth server starting on %s", iss.url)
	log.Printf("GET  /.well-known/jwks.json - RS256 public key")
	log.Printf("POST /oauth/token           - Returns a JWT whose sub is client_id")
	log.Fatal(http.ListenAndServe(addr, nil))
}

func (i *issuer) handleJWKS(w http.ResponseWriter, _ *http.Request) {
	jwks := auth.JWKS{Keys: []auth.JWK{{
		Kid: keyID,
		Kty: "RSA",
		Alg: "RS256",
		Use: "sig",
		N:   base64.RawURLEncoding.EncodeToString(i.key.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(i.key.E)).Bytes()),
	}}}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(jwks)
}

func (i *issuer) handleToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var clientID string
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Failed to parse JSON body", http.StatusBadRequest)
			return
		}
		clientID = body["client_id"]
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Failed to parse form", http.StatusBadRequest)
			return
		}
		clientID = r.FormValue("client_id")
	}

	// client_id becomes the merchant identity
	merchant := clientID
	if merchant == "" {
		merchant = "local-merchant"
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"iss": i.url,
		"sub": merchant,
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	})
	token.Header["kid"] = keyID

	signed, err := token.SignedString(i.key)
	if err != nil {
		http.Error(w, "Failed to sign token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int(tokenTTL.Seconds()),
	})

	log.Printf("Issued token for merchant=%s", merchant)
}
