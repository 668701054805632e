package httpclient_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/efkanbakanay/devhelper/httpclient"
)

func ExampleClient_Get() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	}))
	defer server.Close()

	client := httpclient.New(httpclient.Options{BaseURL: server.URL})

	resp, err := client.Get(context.Background(), "/ping")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(resp.StatusCode, resp.Success(), string(resp.Body))
	// Output: 200 true pong
}

func ExampleClient_GetJSON() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"alice","role":"admin"}`))
	}))
	defer server.Close()

	client := httpclient.New(httpclient.Options{BaseURL: server.URL})

	var user struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}
	if err := client.GetJSON(context.Background(), "/users/1", &user); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%s is %s\n", user.Name, user.Role)
	// Output: alice is admin
}

func ExampleClient_PostJSON() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":42,"name":"bob"}`))
	}))
	defer server.Close()

	client := httpclient.New(httpclient.Options{BaseURL: server.URL})

	created := struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{}
	in := map[string]string{"name": "bob"}

	if err := client.PostJSON(context.Background(), "/users", in, &created); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("created user %d: %s\n", created.ID, created.Name)
	// Output: created user 42: bob
}

func ExampleStatusError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer server.Close()

	client := httpclient.New(httpclient.Options{BaseURL: server.URL})

	err := client.GetJSON(context.Background(), "/reports", nil)

	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		fmt.Println("status:", statusErr.StatusCode)
	}
	// Output: status: 403
}
