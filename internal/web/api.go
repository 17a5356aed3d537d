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

package web

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/cahyasetya/tools/diff"
	"github.com/cahyasetya/tools/internal/jsontext"
	"github.com/cahyasetya/tools/textdiff"
	"github.com/go-playground/validator/v10"
)

// maxRequestBytes bounds API request bodies. Diff cost grows with input
// size, so unbounded bodies would let a single request hog the server.
const maxRequestBytes = 10 << 20

type base64Request struct {
	Text string `json:"text"`
}

type beautifyRequest struct {
	JSON string `json:"json"`
}

type jsonDiffRequest struct {
	JSON1 string `json:"json1" validate:"required"`
	JSON2 string `json:"json2" validate:"required"`
}

type resultResponse struct {
	Result string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleBase64Encode(w http.ResponseWriter, r *http.Request) {
	var req base64Request
	if !s.decode(w, r, &req) {
		return
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(req.Text))
	s.writeJSON(w, http.StatusOK, resultResponse{Result: encoded})
}

func (s *Server) handleBase64Decode(w http.ResponseWriter, r *http.Request) {
	var req base64Request
	if !s.decode(w, r, &req) {
		return
	}
	decoded, err := base64.StdEncoding.DecodeString(req.Text)
	if err != nil {
		s.clientError(w, fmt.Errorf("invalid base64: %v", err))
		return
	}
	s.writeJSON(w, http.StatusOK, resultResponse{Result: string(decoded)})
}

func (s *Server) handleJSONBeautify(w http.ResponseWriter, r *http.Request) {
	var req beautifyRequest
	if !s.decode(w, r, &req) {
		return
	}
	pretty, err := jsontext.Beautify(req.JSON)
	if err != nil {
		s.clientError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resultResponse{Result: pretty})
}

func (s *Server) handleJSONDiff(w http.ResponseWriter, r *http.Request) {
	var req jsonDiffRequest
	if !s.decode(w, r, &req) {
		return
	}
	x, err := jsontext.CanonicalLines(req.JSON1)
	if err != nil {
		s.clientError(w, fmt.Errorf("JSON 1: %w", err))
		return
	}
	y, err := jsontext.CanonicalLines(req.JSON2)
	if err != nil {
		s.clientError(w, fmt.Errorf("JSON 2: %w", err))
		return
	}
	result := textdiff.Unified(x, y,
		textdiff.Labels("JSON 1", "JSON 2"),
		diff.Context(s.cfg.ContextLines))
	s.writeJSON(w, http.StatusOK, resultResponse{Result: result})
}

// decode unmarshals and validates the request body into v. On failure it
// writes the 400 response and returns false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.clientError(w, fmt.Errorf("invalid request body: %v", err))
		return false
	}
	if err := validate.Struct(v); err != nil {
		s.clientError(w, describeValidationError(err))
		return false
	}
	return true
}

func (s *Server) clientError(w http.ResponseWriter, err error) {
	s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("failed to encode response", "error", err)
	}
}

// describeValidationError rewrites validator errors into messages that make
// sense to an API client, e.g. "json1 is required".
func describeValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
