// Package apitest provides an in-memory fake of the carrot backend for tests.
package apitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/gorilla/mux"

	"github.com/Jinsoo1210/carrot/internal/api"
)

// Server is a fake backend with a fixed item catalogue. Every account starts
// with StartingBalance carrots.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	users    map[string]string // email -> password
	balances map[string]int
	tokens   map[string]string // token -> email
	items    []api.Item
	devices  []string
}

// StartingBalance is the carrot balance of a new account.
const StartingBalance = 120

// DefaultItems is the catalogue served by NewServer.
var DefaultItems = []api.Item{
	{ID: 1, Name: "Straw hat", Price: 30, Type: "hat"},
	{ID: 2, Name: "Crown", Price: 100, Type: "hat"},
	{ID: 3, Name: "Heart pin", Price: 20, Type: "accessory"},
	{ID: 4, Name: "Night sky", Price: 500, Type: "background"},
}

// NewServer starts a fake backend. The caller must Close it.
func NewServer() *Server {
	s := &Server{
		users:    make(map[string]string),
		balances: make(map[string]int),
		tokens:   make(map[string]string),
		items:    DefaultItems,
	}
	s.Server = httptest.NewServer(s.router())
	return s
}

// AddUser registers an account directly.
func (s *Server) AddUser(email, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[email] = password
	s.balances[email] = StartingBalance
}

// Balance returns the carrot balance of email.
func (s *Server) Balance(email string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[email]
}

// DeviceIDs returns the device header of every request received so far.
func (s *Server) DeviceIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.devices...)
}

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.recordDevice)
	r.HandleFunc("/login/", s.handleLogin).Methods("POST")
	r.HandleFunc("/signup/", s.handleSignup).Methods("POST")
	r.HandleFunc("/api/v1/shop/items", s.authed(s.handleItems)).Methods("GET")
	r.HandleFunc("/api/v1/shop/purchase", s.authed(s.handlePurchase)).Methods("POST")
	return r
}

func (s *Server) recordDevice(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.devices = append(s.devices, r.Header.Get(api.DeviceHeader))
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "bad form"})
		return
	}
	email, password := r.PostForm.Get("username"), r.PostForm.Get("password")

	s.mu.Lock()
	defer s.mu.Unlock()
	if want, ok := s.users[email]; !ok || want != password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Incorrect email or password"})
		return
	}
	token := fmt.Sprintf("token-%d-%s", len(s.tokens)+1, email)
	s.tokens[token] = email
	writeJSON(w, http.StatusOK, map[string]string{"access_token": token, "token_type": "bearer"})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeValidation(w, "body is not valid JSON")
		return
	}
	if !strings.Contains(in.Email, "@") {
		writeValidation(w, "value is not a valid email address")
		return
	}
	if len(in.Password) < 8 {
		writeValidation(w, "String should have at least 8 characters")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.users[in.Email]; taken {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Email already registered"})
		return
	}
	s.users[in.Email] = in.Password
	s.balances[in.Email] = StartingBalance
	writeJSON(w, http.StatusOK, map[string]any{"email": in.Email, "carrot_balance": StartingBalance})
}

type authedHandler func(w http.ResponseWriter, r *http.Request, email string)

func (s *Server) authed(h authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		s.mu.Lock()
		email, ok := s.tokens[token]
		s.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Could not validate credentials"})
			return
		}
		h(w, r, email)
	}
}

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request, _ string) {
	writeJSON(w, http.StatusOK, s.items)
}

func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request, email string) {
	var in struct {
		ItemID int `json:"item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeValidation(w, "body is not valid JSON")
		return
	}

	var item *api.Item
	for i := range s.items {
		if s.items[i].ID == in.ItemID {
			item = &s.items[i]
		}
	}
	if item == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.balances[email] < item.Price {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "not enough carrots"})
		return
	}
	s.balances[email] -= item.Price
	writeJSON(w, http.StatusOK, api.Purchase{
		NewBalance: s.balances[email],
		Message:    fmt.Sprintf("%s purchased", item.Name),
	})
}

func writeValidation(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"detail": []map[string]string{{"msg": msg}},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
