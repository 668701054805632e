package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type user struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestClient_GetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(user{Name: "alice", Age: 30})
	}))
	defer server.Close()

	c := New(Options{BaseURL: server.URL})

	var got user
	if err := c.GetJSON(context.Background(), "/users/1", &got); err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
	if got.Name != "alice" || got.Age != 30 {
		t.Errorf("decoded = %+v, want {alice 30}", got)
	}
}

func TestClient_GetJSON_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"no such user"}`))
	}))
	defer server.Close()

	c := New(Options{BaseURL: server.URL})

	var got user
	err := c.GetJSON(context.Background(), "/users/999", &got)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error type = %T, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, http.StatusNotFound)
	}
	if !strings.Contains(string(statusErr.Body), "no such user") {
		t.Errorf("Body = %q, want it to contain the server message", statusErr.Body)
	}
	if !strings.Contains(err.Error(), "unexpected status 404") {
		t.Errorf("Error() = %q, want it to name the status", err.Error())
	}
}

func TestClient_GetJSON_InvalidBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	c := New(Options{BaseURL: server.URL})

	var got user
	err := c.GetJSON(context.Background(), "/users/1", &got)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !strings.Contains(err.Error(), "decode response body") {
		t.Errorf("Error() = %q, want decode error", err.Error())
	}
}

func TestClient_GetJSON_NilOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ignored":true}`))
	}))
	defer server.Close()

	c := New(Options{BaseURL: server.URL})

	if err := c.GetJSON(context.Background(), "/ping", nil); err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
}

func TestClient_PostJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}

		var in user
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		if in.Name != "bob" {
			t.Errorf("request name = %q, want bob", in.Name)
		}

		in.Age = 25
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(in)
	}))
	defer server.Close()

	c := New(Options{BaseURL: server.URL})

	var got user
	if err := c.PostJSON(context.Background(), "/users", user{Name: "bob"}, &got); err != nil {
		t.Fatalf("PostJSON() error = %v", err)
	}
	if got.Name != "bob" || got.Age != 25 {
		t.Errorf("decoded = %+v, want {bob 25}", got)
	}
}

func TestClient_PostJSON_NilIn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if len(body) != 0 {
			t.Errorf("body = %q, want empty", body)
		}
	}))
	defer server.Close()

	c := New(Options{BaseURL: server.URL})

	if err := c.PostJSON(context.Background(), "/trigger", nil, nil); err != nil {
		t.Fatalf("PostJSON() error = %v", err)
	}
}

func TestClient_PostJSON_EncodeError(t *testing.T) {
	c := New(Options{})

	err := c.PostJSON(context.Background(), "http://example.invalid/", make(chan int), nil)
	if err == nil {
		t.Fatal("expected encode error")
	}
	if !strings.Contains(err.Error(), "encode request body") {
		t.Errorf("Error() = %q, want encode error", err.Error())
	}
}

func TestStatusError_BodyExcerptCapped(t *testing.T) {
	big := strings.Repeat("x", maxErrorBody*4)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(big))
	}))
	defer server.Close()

	c := New(Options{BaseURL: server.URL})

	err := c.GetJSON(context.Background(), "/", nil)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error type = %T, want *StatusError", err)
	}
	if len(statusErr.Body) != maxErrorBody {
		t.Errorf("excerpt length = %d, want %d", len(statusErr.Body), maxErrorBody)
	}
}

func TestStatusError_Error(t *testing.T) {
	withBody := &StatusError{StatusCode: 503, Status: "503 Service Unavailable", Body: []byte("try later")}
	if got := withBody.Error(); got != "httpclient: unexpected status 503: try later" {
		t.Errorf("Error() = %q", got)
	}

	empty := &StatusError{StatusCode: 404, Status: "404 Not Found"}
	if got := empty.Error(); got != "httpclient: unexpected status 404" {
		t.Errorf("Error() = %q", got)
	}
}
