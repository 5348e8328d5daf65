package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/hmonterrosa/scoring-dashboard/leaderboard"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The fullscreen boards and kiosks run on venue displays with
		// arbitrary origins.
		return true
	},
}

type WebSocketHandler struct {
	hub *leaderboard.Hub
}

func NewWebSocketHandler(hub *leaderboard.Hub) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
	}
}

// ServeLeaderboard upgrades the connection and subscribes the client to live
// leaderboard updates.
func (h *WebSocketHandler) ServeLeaderboard(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("failed to upgrade websocket connection: %v", err)
		return
	}

	client := &leaderboard.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: leaderboard.RoomLeaderboard,
	}
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
