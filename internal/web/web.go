// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package web implements the ctools web application: a set of small
// developer utilities (base64, JSON formatting, JSON diff) served over HTTP.
//
// Tool pages are rendered from embedded templates, the tools themselves are
// exposed as JSON APIs under /api/.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Defaults for Config fields that are left unset.
const (
	DefaultAddr         = "0.0.0.0:5001"
	DefaultContextLines = 3
)

var validate = validator.New()

// Config configures the web server.
type Config struct {
	// Addr is the listen address in host:port form.
	Addr string `yaml:"addr" validate:"required,hostname_port"`

	// ContextLines is the number of unchanged lines shown around changes in
	// JSON diffs.
	ContextLines int `yaml:"context_lines" validate:"min=0"`

	// Logger receives request and error logs, slog.Default() when nil.
	Logger *slog.Logger `yaml:"-"`
}

// DefaultConfig returns the configuration used when no config file or flags
// are given.
func DefaultConfig() Config {
	return Config{
		Addr:         DefaultAddr,
		ContextLines: DefaultContextLines,
	}
}

// tool is an entry on the index page.
type tool struct {
	Name        string
	Path        string
	Description string
	Ready       bool
}

// tools lists everything reachable from the index page. Entries that aren't
// ready yet are served as placeholder pages.
var tools = []tool{
	{Name: "Base64 Encoder/Decoder", Path: "/base64", Description: "Encode text to base64 and back.", Ready: true},
	{Name: "JSON Beautify", Path: "/json-beautify", Description: "Format JSON with two-space indentation.", Ready: true},
	{Name: "JSON Diff", Path: "/json-diff", Description: "Compare two JSON documents structurally.", Ready: true},
	{Name: "Tool Generator", Path: "/tool-generator", Description: "Generate scaffolding for a new tool.", Ready: false},
	{Name: "Epoch Converter", Path: "/epoch-converter", Description: "Convert unix timestamps to dates and back.", Ready: false},
	{Name: "URL Encoder/Decoder", Path: "/url-encoder", Description: "Encode and decode URL components.", Ready: false},
	{Name: "UUID Generator", Path: "/uuid-generator", Description: "Generate random UUIDs.", Ready: false},
}

//go:embed templates
var templatesFS embed.FS

// Server serves the tool pages and APIs. It holds no mutable state and is
// safe for concurrent use.
type Server struct {
	cfg     Config
	log     *slog.Logger
	tmpl    *template.Template
	handler http.Handler
}

// NewServer validates cfg and builds a ready-to-serve Server.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		cfg:  cfg,
		log:  cfg.Logger,
		tmpl: tmpl,
	}
	s.handler = s.logRequests(s.routes())
	return s, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.cfg.Addr }

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /base64", s.handlePage("base64.html", "Base64 Encoder/Decoder"))
	mux.HandleFunc("GET /json-beautify", s.handlePage("json_beautify.html", "JSON Beautify"))
	mux.HandleFunc("GET /json-diff", s.handlePage("json_diff.html", "JSON Diff"))
	for _, t := range tools {
		if !t.Ready {
			mux.HandleFunc("GET "+t.Path, s.handlePage("stub.html", t.Name))
		}
	}

	mux.HandleFunc("POST /api/base64/encode", s.handleBase64Encode)
	mux.HandleFunc("POST /api/base64/decode", s.handleBase64Decode)
	mux.HandleFunc("POST /api/json/beautify", s.handleJSONBeautify)
	mux.HandleFunc("POST /api/json/diff", s.handleJSONDiff)

	mux.HandleFunc("GET /healthz", s.handleHealthz)

	return mux
}

// pageData is passed to every page template.
type pageData struct {
	Title string
	Tools []tool
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, "index.html", pageData{Title: "Tools", Tools: tools})
}

func (s *Server) handlePage(name, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, name, pageData{Title: title})
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok")
}

// render executes the template into a buffer first so that an execution error
// results in a clean 500 instead of a half-written page.
func (s *Server) render(w http.ResponseWriter, name string, data pageData) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		s.log.Error("failed to render page", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
