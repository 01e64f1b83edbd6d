// Package http provides a fluent client-side HTTP request-building and
// response-handling library layered on net/http.
//
// This package is designed for programmatic use and provides:
//   - An immutable HttpRequest factory binding a transport client
//   - A fluent WebTarget builder for paths, headers, query parameters and
//     per-dispatch configuration
//   - Untyped (Response) and typed (ResponseHandler[T]) result wrappers
//   - Charset-aware response content materialization
//
// Basic Usage:
//
//	hr := http.New(
//	    http.WithTimeout(30*time.Second),
//	    http.WithBaseHeader("Authorization", "Bearer token"),
//	)
//
//	target, err := hr.Target("https://api.example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := target.
//	    Path("users").
//	    AddParameter("limit", "10").
//	    AddHeader("Accept", "application/json").
//	    Get()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer resp.Close()
//
//	body, err := resp.BodyAsString()
//
// Typed Responses:
//
//	type User struct {
//	    ID   int    `json:"id"`
//	    Name string `json:"name"`
//	}
//
//	target, _ := hr.Target("https://api.example.com/users")
//	handler, err := http.GetAs[[]User](target)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	users, err := handler.Get()
//
// Thread Safety:
//
// HttpRequest and Client are safe for concurrent use. A WebTarget is a
// short-lived builder owned by a single goroutine until dispatch; response
// bodies are consume-once resources.
package http
