package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"agencydesk/internal/verifier"
	"agencydesk/pkg/config"
)

// Dev tool: plays the external slip verification service. Signs a callback
// body with VERIFIER_SECRET and posts it to a running API instance.
//
//	go run ./cmd/dev/simverify -record <payment-record-id> -amount 1500.00 -date 2024-04-13
//	go run ./cmd/dev/simverify -record <payment-record-id> -fail "amount unreadable"
func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8081", "API base URL")
		record  = flag.String("record", "", "payment record id (required)")
		amount  = flag.String("amount", "", "verified amount, e.g. 1500.00")
		date    = flag.String("date", "", "verified payment date, YYYY-MM-DD")
		failMsg = flag.String("fail", "", "report a failure with this error instead of a verification")
	)
	flag.Parse()

	if *record == "" {
		fmt.Fprintln(os.Stderr, "-record is required")
		os.Exit(2)
	}

	cfg := config.Load()
	if cfg.VerifierSecret == "" {
		fmt.Fprintln(os.Stderr, "VERIFIER_SECRET is not set")
		os.Exit(2)
	}

	req := verifier.CallbackRequest{PaymentRecordID: *record}
	if *failMsg != "" {
		req.Error = *failMsg
	} else {
		if *amount == "" || *date == "" {
			fmt.Fprintln(os.Stderr, "either -fail, or both -amount and -date, are required")
			os.Exit(2)
		}
		req.Verified = true
		req.Amount = *amount
		req.PaymentDate = *date
	}

	body, err := json.Marshal(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal: %v\n", err)
		os.Exit(1)
	}

	httpReq, err := http.NewRequest(http.MethodPost, *baseURL+"/v1/verifier/callback", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "request: %v\n", err)
		os.Exit(1)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(verifier.SignatureHeader, verifier.Sign(body, cfg.VerifierSecret))

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		fmt.Fprintf(os.Stderr, "post: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	out, _ := io.ReadAll(resp.Body)
	fmt.Printf("%s\n%s\n", resp.Status, out)
}
