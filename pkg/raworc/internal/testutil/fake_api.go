// Package testutil provides an in-process fake of the Raworc REST API for
// hermetic tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// BasePath is the API prefix the fake serves under.
const BasePath = "/api/v0"

// Call records one request received by the fake.
type Call struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Response is a scripted reply.
type Response struct {
	Status int
	Body   string
}

// FakeAPI is a chi router behind httptest.Server that records every call.
type FakeAPI struct {
	server *httptest.Server
	router chi.Router

	mu    sync.Mutex
	calls []Call
}

// NewFakeAPI starts a fake API server that is closed when the test ends.
func NewFakeAPI(t testing.TB) *FakeAPI {
	t.Helper()

	f := &FakeAPI{router: chi.NewRouter()}
	f.router.Use(f.record)
	f.server = httptest.NewServer(f.router)
	t.Cleanup(f.server.Close)

	return f
}

// URL returns the API base URL including BasePath.
func (f *FakeAPI) URL() string {
	return f.server.URL + BasePath
}

// Handle registers a handler for method and a path relative to BasePath.
// Patterns use chi syntax, e.g. "spaces/{space}/sessions".
func (f *FakeAPI) Handle(method, pattern string, h http.HandlerFunc) {
	f.router.MethodFunc(method, BasePath+"/"+pattern, h)
}

// JSON replies to every matching request with status and body. Strings are
// sent verbatim; anything else is encoded as JSON.
func (f *FakeAPI) JSON(method, pattern string, status int, body any) {
	data := encode(body)
	f.Handle(method, pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(data)
	})
}

// Text replies to every matching request with status and a raw body.
func (f *FakeAPI) Text(method, pattern string, status int, body string) {
	f.Handle(method, pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// Sequence replies with responses in order; the last one repeats.
func (f *FakeAPI) Sequence(method, pattern string, responses ...Response) {
	var (
		mu   sync.Mutex
		next int
	)
	f.Handle(method, pattern, func(w http.ResponseWriter, _ *http.Request) {
		mu.Lock()
		resp := responses[min(next, len(responses)-1)]
		next++
		mu.Unlock()

		w.WriteHeader(resp.Status)
		_, _ = io.WriteString(w, resp.Body)
	})
}

// RequireBearer replies with body only when the request carries token, and
// with 401 otherwise.
func (f *FakeAPI) RequireBearer(method, pattern, token string, body any) {
	data := encode(body)
	f.Handle(method, pattern, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":{"message":"unauthorized"}}`)

			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	})
}

// Login makes auth/login issue token.
func (f *FakeAPI) Login(token string) {
	f.JSON(http.MethodPost, "auth/login", http.StatusOK, map[string]any{
		"token":      token,
		"token_type": "Bearer",
	})
}

// Calls returns a copy of every recorded call.
func (f *FakeAPI) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]Call(nil), f.calls...)
}

// Count returns how many calls matched method and a path relative to
// BasePath.
func (f *FakeAPI) Count(method, path string) int {
	n := 0
	for _, c := range f.Calls() {
		if c.Method == method && c.Path == BasePath+"/"+path {
			n++
		}
	}

	return n
}

// Last returns the most recent call, or a zero Call.
func (f *FakeAPI) Last() Call {
	calls := f.Calls()
	if len(calls) == 0 {
		return Call{}
	}

	return calls[len(calls)-1]
}

func (f *FakeAPI) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		f.mu.Lock()
		f.calls = append(f.calls, Call{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     body,
		})
		f.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func encode(body any) []byte {
	switch v := body.(type) {
	case string:
		return []byte(v)
	case []byte:
		return v
	}
	data, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}

	return data
}
