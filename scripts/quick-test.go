//go:build ignore

// quick-test.go - walks a simulated payment through a running API server
//
// Usage:
//   go run scripts/quick-test.go [-api http://localhost:8080/api/v1] [-token <bearer>]

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const usdc = "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174"

var (
	apiURL = flag.String("api", "http://localhost:8080/api/v1", "API base URL")
	bearer = flag.String("token", "", "Merchant bearer token, when merchant auth is enabled")
)

var client = &http.Client{Timeout: 30 * time.Second}

func main() {
	flag.Parse()

	fmt.Println("=== Creating simulated payment request ===")
	var created struct {
		ID     string `json:"id"`
		Link   string `json:"link"`
		Amount string `json:"amount"`
		Symbol string `json:"symbol"`
	}
	must(call(http.MethodPost, "/payments", map[string]string{
		"mode":   "simulated",
		"token":  usdc,
		"amount": "12.5",
		"memo":   "Quick test",
	}, http.StatusCreated, &created))
	fmt.Printf("✓ Created %s (%s %s)\n  %s\n\n", created.ID, created.Amount, created.Symbol, created.Link)

	var sess struct {
		Handle  string `json:"handle"`
		Step    string `json:"step"`
		Receipt *struct {
			TxHash string `json:"tx_hash"`
		} `json:"receipt"`
	}

	fmt.Println("=== Opening payer session ===")
	must(call(http.MethodPost, "/sessions", map[string]string{"id": created.ID}, http.StatusCreated, &sess))
	fmt.Printf("✓ Session %s at %s\n", sess.Handle, sess.Step)

	must(call(http.MethodPost, "/sessions/"+sess.Handle+"/approve", nil, http.StatusOK, &sess))
	fmt.Printf("✓ Approved, now %s\n", sess.Step)

	must(call(http.MethodPost, "/sessions/"+sess.Handle+"/settle", nil, http.StatusOK, &sess))
	fmt.Printf("✓ Settled, tx %s\n", sess.Receipt.TxHash)

	must(call(http.MethodDelete, "/sessions/"+sess.Handle, nil, http.StatusNoContent, nil))

	fmt.Println()
	fmt.Println("=== Reopening to confirm the paid state ===")
	must(call(http.MethodPost, "/sessions", map[string]string{"id": created.ID}, http.StatusCreated, &sess))
	fmt.Printf("✓ Reopened at %s\n", sess.Step)
}

func call(method, path string, body any, want int, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, *apiURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if *bearer != "" {
		req.Header.Set("Authorization", "Bearer "+*bearer)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != want {
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, respBody)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(respBody, out)
}

func must(err error) {
	if err != nil {
		fmt.Printf("✗ %v\n", err)
		os.Exit(1)
	}
}
