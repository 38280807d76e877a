// Package fakeadmin is an in-memory stand-in for the Slack bot admin and
// auth endpoints, for tests.
package fakeadmin

import (
	"bytes"
	"encoding/json"
	"go-botadmin/internal/domain/types/slacktypes"
	"go-botadmin/pkg/e"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/julienschmidt/httprouter"
)

type Call struct {
	Method        string
	Path          string
	Authorization string
	Body          string
}

type Server struct {
	URL *url.URL

	mu       sync.Mutex
	bots     map[int]*slacktypes.SlackBot
	configs  map[int][]slacktypes.SlackChannelConfig
	failures map[string]failure
	calls    []Call
}

type failure struct {
	status int
	body   string
}

func New(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		bots:     make(map[int]*slacktypes.SlackBot),
		configs:  make(map[int][]slacktypes.SlackChannelConfig),
		failures: make(map[string]failure),
	}

	router := httprouter.New()
	router.GET("/api/manage/admin/slack-app/bots/:id", s.record(s.getBot))
	router.PATCH("/api/manage/admin/slack-app/bots/:id", s.record(s.patchBot))
	router.GET("/api/manage/admin/slack-app/bots/:id/config", s.record(s.getConfigs))
	router.DELETE("/api/manage/admin/slack-app/channel/:id", s.record(s.deleteConfig))
	router.POST("/api/auth/forgot-password", s.record(noContent))
	router.POST("/api/auth/reset-password", s.record(noContent))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	parsed, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("parse fake server url: %v", err)
	}

	s.URL = parsed

	return s
}

func (s *Server) AddBot(bot slacktypes.SlackBot, configs ...slacktypes.SlackChannelConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bots[bot.ID] = &bot
	s.configs[bot.ID] = append(make([]slacktypes.SlackChannelConfig, 0, len(configs)), configs...)
}

// FailNext makes the next request to method+path answer with status and
// body instead of being served.
func (s *Server) FailNext(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures[method+" "+path] = failure{status: status, body: body}
}

func (s *Server) Bot(id int) (slacktypes.SlackBot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bot, ok := s.bots[id]
	if !ok {
		return slacktypes.SlackBot{}, false
	}

	return *bot, true
}

func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Call(nil), s.calls...)
}

func (s *Server) record(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}

		s.mu.Lock()
		s.calls = append(s.calls, Call{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			Body:          string(body),
		})

		key := r.Method + " " + r.URL.Path
		fail, shouldFail := s.failures[key]
		delete(s.failures, key)
		s.mu.Unlock()

		if shouldFail {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(fail.status)
			write(w, []byte(fail.body))

			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))

		next(w, r, ps)
	}
}

func (s *Server) getBot(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	id, ok := paramID(w, ps)
	if !ok {
		return
	}

	bot, found := s.Bot(id)
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Slack bot not found"})

		return
	}

	writeJSON(w, http.StatusOK, bot)
}

func (s *Server) patchBot(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := paramID(w, ps)
	if !ok {
		return
	}

	var request slacktypes.UpdateSlackBotRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "invalid body"})

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bot, found := s.bots[id]
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Slack bot not found"})

		return
	}

	if request.Name != nil {
		bot.Name = *request.Name
	}

	if request.Enabled != nil {
		bot.Enabled = *request.Enabled
	}

	writeJSON(w, http.StatusOK, bot)
}

func (s *Server) getConfigs(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	id, ok := paramID(w, ps)
	if !ok {
		return
	}

	s.mu.Lock()
	configs, found := s.configs[id]
	s.mu.Unlock()

	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Slack bot not found"})

		return
	}

	writeJSON(w, http.StatusOK, configs)
}

func (s *Server) deleteConfig(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	id, ok := paramID(w, ps)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for botID, configs := range s.configs {
		for i, config := range configs {
			if config.ID == id {
				s.configs[botID] = append(configs[:i:i], configs[i+1:]...)

				if bot, ok := s.bots[botID]; ok {
					bot.ConfigsCount = len(s.configs[botID])
				}

				w.WriteHeader(http.StatusNoContent)

				return
			}
		}
	}

	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Slack channel config not found"})
}

func noContent(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusNoContent)
}

func paramID(w http.ResponseWriter, ps httprouter.Params) (int, bool) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "id must be an integer"})

		return 0, false
	}

	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	write(w, data)
}

func write(w http.ResponseWriter, data []byte) {
	if _, err := w.Write(data); err != nil {
		slog.Error(
			e.ErrWrite.Error(),
			slog.String("error", err.Error()))
	}
}
