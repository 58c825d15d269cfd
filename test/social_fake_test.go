//go:build integration_test || all_tests

package test

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
)

// fakeSocial serves the social and gamification sources the aggregator reads.
type fakeSocial struct {
	mu        sync.Mutex
	failPath  string
	lastAuths []string
	mux       *http.ServeMux
}

func newFakeSocial() *fakeSocial {
	f := &fakeSocial{mux: http.NewServeMux()}
	f.mux.HandleFunc("/social/friends", f.serve(`[{"id":"f1"},{"id":"f2"},{"id":"f3"}]`))
	f.mux.HandleFunc("/social/challenges", f.serve(`[{"name":"10k","status":"active"},{"name":"plank","status":"completed"}]`))
	f.mux.HandleFunc("/gamification/points", f.serve(`{"total":1234.5}`))
	f.mux.HandleFunc("/gamification/badges", f.serve(`[{"name":"b1"},{"name":"b2"},{"name":"b3"},{"name":"b4"}]`))
	return f
}

func (f *fakeSocial) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mux.ServeHTTP(w, r)
}

func (f *fakeSocial) serve(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.lastAuths = append(f.lastAuths, r.Header.Get("Authorization"))
		failing := f.failPath != "" && strings.HasPrefix(r.URL.Path, f.failPath)
		f.mu.Unlock()

		if failing {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(json.RawMessage(body))
	}
}

func (f *fakeSocial) setFailing(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failPath = path
}

func (f *fakeSocial) takeAuths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	auths := f.lastAuths
	f.lastAuths = nil
	return auths
}
