// Package gatewaytest runs an in-process stand-in for the Railway GraphQL
// API.
package gatewaytest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/railwayapp/envcli/entity"
)

const (
	OperationProject = "projectById"
	OperationEnvs    = "allEnvsForProject"
)

// Request is one GraphQL call received by the server.
type Request struct {
	Operation string
	Variables map[string]interface{}
	Header    http.Header
}

type Server struct {
	*httptest.Server

	// Token is the bearer token the server accepts.
	Token string

	mu       sync.Mutex
	projects map[string]*entity.Project
	envs     map[string][]*entity.EnvVariable
	status   map[string]int
	delay    map[string]time.Duration
	gqlErr   map[string]string
	requests []Request
}

func NewServer(token string) *Server {
	s := &Server{
		Token:    token,
		projects: map[string]*entity.Project{},
		envs:     map[string][]*entity.EnvVariable{},
		status:   map[string]int{},
		delay:    map[string]time.Duration{},
		gqlErr:   map[string]string{},
	}
	r := chi.NewRouter()
	r.Post("/graphql", s.handleGraphQL)
	s.Server = httptest.NewServer(r)
	return s
}

func (s *Server) AddProject(p *entity.Project, envs ...*entity.EnvVariable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[p.Id] = p
	s.envs[p.Id] = envs
}

// FailWith makes every call of operation answer with status.
func (s *Server) FailWith(operation string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[operation] = status
}

// FailWithGraphQLError makes every call of operation answer 200 with message
// in the errors list and null data, the way the API reports missing objects.
func (s *Server) FailWithGraphQLError(operation, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gqlErr[operation] = message
}

// Stall holds calls of operation for d or until the client gives up.
func (s *Server) Stall(operation string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay[operation] = d
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Count returns how many calls of operation were received.
func (s *Server) Count(operation string) int {
	n := 0
	for _, req := range s.Requests() {
		if req.Operation == operation {
			n++
		}
	}
	return n
}

func (s *Server) handleGraphQL(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query     string                 `json:"query"`
		Variables map[string]interface{} `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid body")
		return
	}

	operation := ""
	switch {
	case strings.Contains(body.Query, OperationProject):
		operation = OperationProject
	case strings.Contains(body.Query, OperationEnvs):
		operation = OperationEnvs
	}

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Operation: operation,
		Variables: body.Variables,
		Header:    r.Header.Clone(),
	})
	status := s.status[operation]
	delay := s.delay[operation]
	gqlErr := s.gqlErr[operation]
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(delay):
		}
	}
	if r.Header.Get("Authorization") != "Bearer "+s.Token {
		writeErrors(w, http.StatusUnauthorized, "Not Authorized")
		return
	}
	if status != 0 {
		writeErrors(w, status, http.StatusText(status))
		return
	}
	if gqlErr != "" {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]string{{"message": gqlErr}},
			"data":   map[string]interface{}{operation: nil},
		})
		return
	}

	projectID, _ := body.Variables["projectId"].(string)
	switch operation {
	case OperationProject:
		s.mu.Lock()
		project := s.projects[projectID]
		s.mu.Unlock()
		writeData(w, map[string]interface{}{OperationProject: project})
	case OperationEnvs:
		target, _ := body.Variables["target"].(string)
		s.mu.Lock()
		envs := make([]*entity.EnvVariable, 0, len(s.envs[projectID]))
		for _, env := range s.envs[projectID] {
			if target == "" || string(env.Target) == target {
				envs = append(envs, env)
			}
		}
		s.mu.Unlock()
		writeData(w, map[string]interface{}{OperationEnvs: envs})
	default:
		writeErrors(w, http.StatusBadRequest, "unknown operation")
	}
}

func writeData(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": data})
}

func writeErrors(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"errors": []map[string]string{{"message": message}},
	})
}
