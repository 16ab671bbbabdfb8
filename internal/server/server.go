// Package server publishes island generation results over WebSocket and
// accepts regenerate requests from connected clients.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"islandgen/internal/island"
)

var errEmptyRequest = errors.New("request has neither seed nor set")

// Server fans generation results out to every connected client. Writes to a
// connection are serialized by that connection's mutex.
type Server struct {
	gen      *island.Generator
	upgrader websocket.Upgrader

	clientsMu sync.RWMutex
	clients   map[*websocket.Conn]*sync.Mutex
}

// New returns a server publishing results of gen.
func New(gen *island.Generator) *Server {
	return &Server{
		gen: gen,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Handler routes /ws to the WebSocket endpoint and /result to a JSON
// snapshot of the current result.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/result", s.handleResult)
	return mux
}

// ClientCount reports the number of connected clients.
func (s *Server) ClientCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	res, err := s.current()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(newResultMessage(res, s.gen.Parameters())); err != nil {
		log.Println("result encode error:", err)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	connMu := &sync.Mutex{}
	s.clientsMu.Lock()
	s.clients[conn] = connMu
	s.clientsMu.Unlock()
	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, conn)
		s.clientsMu.Unlock()
	}()

	res, err := s.current()
	if err != nil {
		s.send(conn, connMu, ErrorMessage{Type: "error", Error: err.Error()})
		return
	}
	if err := s.send(conn, connMu, newResultMessage(res, s.gen.Parameters())); err != nil {
		return
	}

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println("WebSocket read error:", err)
			}
			return
		}
		res, err := s.apply(req)
		if err != nil {
			log.Printf("rejected request: %v", err)
			s.send(conn, connMu, ErrorMessage{Type: "error", Error: err.Error()})
			continue
		}
		log.Printf("regenerated seed %d in %v", res.Seed, res.Elapsed)
		s.broadcast(newResultMessage(res, s.gen.Parameters()))
	}
}

// current returns the published result, generating one first if needed.
func (s *Server) current() (*island.Result, error) {
	if res := s.gen.Current(); res != nil {
		return res, nil
	}
	if err := s.gen.Reset(0); err != nil {
		return nil, err
	}
	return s.gen.Current(), nil
}

// apply runs one request against the generator.
func (s *Server) apply(req Request) (*island.Result, error) {
	switch {
	case len(req.Set) > 0 && req.Seed != nil:
		return s.gen.UpdateWithSeed(merge(req.Set), *req.Seed)
	case len(req.Set) > 0:
		return s.gen.Update(merge(req.Set))
	case req.Seed != nil:
		return s.gen.Regenerate(*req.Seed)
	default:
		return nil, errEmptyRequest
	}
}

func merge(values map[string]string) func(*island.Config) {
	return func(c *island.Config) { *c = island.Merge(*c, values) }
}

func (s *Server) send(conn *websocket.Conn, mu *sync.Mutex, msg any) error {
	mu.Lock()
	defer mu.Unlock()
	err := conn.WriteJSON(msg)
	if err != nil {
		log.Println("WebSocket write error:", err)
	}
	return err
}

func (s *Server) broadcast(msg any) {
	s.clientsMu.RLock()
	var failed []*websocket.Conn
	for conn, mu := range s.clients {
		if err := s.send(conn, mu, msg); err != nil {
			conn.Close()
			failed = append(failed, conn)
		}
	}
	s.clientsMu.RUnlock()

	if len(failed) > 0 {
		s.clientsMu.Lock()
		for _, conn := range failed {
			delete(s.clients, conn)
		}
		s.clientsMu.Unlock()
	}
}
