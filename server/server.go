package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"dyno/model"
	"dyno/simulator"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
}

func NewServer(addr string, upgrader websocket.Upgrader) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
	}
}

// serveWs handles websocket requests from the peer. Every connection gets
// its own hub and simulator; runs share nothing but the read-only tables.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("upgrade: ", err)
		return
	}
	defer conn.Close()

	hub := NewHub(simulator.NewSimulator())
	hub.conn = conn
	go hub.handleRequest()
	go hub.handleResponse()
	defer hub.close()

	log.Info("client connected: ", conn.RemoteAddr())
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			log.Info("client gone: ", err)
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Serve() {
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.serveWs(w, r)
	})
	log.Info("listening on ", s.addr)
	if err := http.ListenAndServe(s.addr, nil); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
