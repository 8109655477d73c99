package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/tabwriter"
	"time"

	"petwelfare/internal/util"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type smokeOptions struct {
	BaseURL  string
	Email    string
	Password string
	Timeout  time.Duration
}

type smokeResult struct {
	Step     string
	Status   int
	Passed   bool
	Detail   string
	Duration time.Duration
}

// envelope mirrors the API response body.
type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"errorCode"`
}

func newSmokeCommand() *cobra.Command {
	opts := smokeOptions{}

	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Run an HTTP smoke test against a running API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := &http.Client{Timeout: opts.Timeout}
			if opts.Email != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Smoke testing %s as %s\n", opts.BaseURL, util.MaskEmail(opts.Email))
			}
			results := runSmoke(cmd.Context(), client, opts)
			if failed := printSmokeReport(cmd.OutOrStdout(), results); failed > 0 {
				return errors.Errorf("%d smoke step(s) failed", failed)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.BaseURL, "base-url", "http://localhost:5000", "API base URL")
	cmd.Flags().StringVar(&opts.Email, "email", "", "account used for the login steps")
	cmd.Flags().StringVar(&opts.Password, "password", "", "password for --email")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 10*time.Second, "per request timeout")

	return cmd
}

// runSmoke checks liveness, the module catalogue and, with credentials, login and /me.
func runSmoke(ctx context.Context, client *http.Client, opts smokeOptions) []smokeResult {
	base := strings.TrimRight(opts.BaseURL, "/")
	results := make([]smokeResult, 0, 4)

	results = append(results, smokeStep(ctx, client, "health", http.MethodGet, base+"/health", nil, ""))
	results = append(results, smokeStep(ctx, client, "module catalogue", http.MethodGet, base+"/api/modules", nil, ""))

	if opts.Email == "" {
		return results
	}

	login := smokeStep(ctx, client, "login", http.MethodPost, base+"/api/auth/login",
		map[string]string{"email": opts.Email, "password": opts.Password}, "")
	results = append(results, login)
	if !login.Passed {
		return results
	}

	results = append(results, smokeStep(ctx, client, "current user", http.MethodGet, base+"/api/auth/me", nil, login.Detail))

	return results
}

// smokeStep performs one request. For a successful login Detail carries the token.
func smokeStep(ctx context.Context, client *http.Client, step, method, url string, body any, token string) (result smokeResult) {
	result.Step = step
	start := time.Now()
	defer func() { result.Duration = time.Since(start) }()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			result.Detail = err.Error()

			return result
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		result.Detail = err.Error()

		return result
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		result.Detail = err.Error()

		return result
	}
	defer resp.Body.Close()

	result.Status = resp.StatusCode

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		result.Detail = "response is not a JSON envelope"

		return result
	}

	result.Passed = resp.StatusCode == http.StatusOK && env.Success
	if !result.Passed {
		result.Detail = strings.TrimSpace(env.ErrorCode + " " + env.Message)

		return result
	}

	if step == "login" {
		var auth struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(env.Data, &auth); err != nil || auth.Token == "" {
			result.Passed = false
			result.Detail = "login response has no token"

			return result
		}
		result.Detail = auth.Token
	}

	return result
}

// printSmokeReport renders the results as a table and returns the number of failures.
func printSmokeReport(w io.Writer, results []smokeResult) int {
	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tSTATUS\tRESULT\tTIME\tDETAIL")

	failed := 0
	for _, r := range results {
		verdict := pass("PASS")
		detail := ""
		if !r.Passed {
			failed++
			verdict = fail("FAIL")
			detail = r.Detail
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", r.Step, r.Status, verdict, util.FormatDuration(r.Duration), detail)
	}
	_ = tw.Flush()

	return failed
}
