// Package httpclient provides an opinionated HTTP client for calling
// JSON-speaking services.
//
// A Client wraps *http.Client with a base URL, default headers, structured
// request logging, automatic request IDs, and retries with exponential
// backoff. Retries are driven by github.com/cenkalti/backoff/v5 and apply to
// transport failures and retryable status codes (5xx and 429) on idempotent
// methods; POST is retried only when the policy opts in.
//
// Basic usage:
//
//	client := httpclient.New(httpclient.Options{
//		BaseURL: "https://api.example.com",
//		Timeout: 10 * time.Second,
//	})
//
//	var user User
//	if err := client.GetJSON(ctx, "/users/42", &user); err != nil {
//		var statusErr *httpclient.StatusError
//		if errors.As(err, &statusErr) {
//			// Non-2xx response; statusErr carries status and body excerpt.
//		}
//		return err
//	}
//
// Do and the method helpers return the server's response whenever one was
// received, even when it carries an error status; they return an error only
// when no response could be obtained. The JSON helpers additionally convert
// non-2xx responses into *StatusError.
package httpclient
