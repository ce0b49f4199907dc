// Package mockapi serves canned Open Library and Wikipedia responses
// for offline development. The CLI points both API clients at one
// Server when mock mode is enabled; the toggle is read once at process
// start.
package mockapi

import (
	"embed"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
)

//go:embed fixtures/*.json
var fixturesFS embed.FS

// Server is an in-process HTTP server replaying fixture responses for
// every endpoint the clients consume.
type Server struct {
	srv *httptest.Server
}

// Start launches the mock server.
func Start() *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/search.json", serveFixture("search.json"))
	mux.HandleFunc("/recentchanges.json", serveFixture("changes.json"))
	mux.HandleFunc("/recentchanges/", serveFixture("changes.json"))
	mux.HandleFunc("/api/books", serveFixture("lookup.json"))
	mux.HandleFunc("/w/api.php", serveFixture("wiki.json"))
	mux.HandleFunc("/subjects/", serveFixture("subject.json"))
	mux.HandleFunc("/books/", serveFixture("work.json"))

	mux.HandleFunc("/works/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/editions.json") {
			serveFixture("editions.json")(w, r)
			return
		}
		serveFixture("work.json")(w, r)
	})

	mux.HandleFunc("/authors/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/works.json") {
			serveFixture("author_works.json")(w, r)
			return
		}
		serveFixture("author.json")(w, r)
	})

	srv := httptest.NewServer(mux)
	slog.Info("Mock API server started", "url", srv.URL)
	return &Server{srv: srv}
}

// URL returns the base URL both clients should be pointed at.
func (s *Server) URL() string {
	return s.srv.URL
}

// WikiURL returns the endpoint to use as the Wikipedia API base.
func (s *Server) WikiURL() string {
	return s.srv.URL + "/w/api.php"
}

// Close shuts the server down.
func (s *Server) Close() {
	s.srv.Close()
}

func serveFixture(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fixturesFS.ReadFile("fixtures/" + name)
		if err != nil {
			http.Error(w, "missing fixture: "+name, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}
}
