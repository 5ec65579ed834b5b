// Package notify pushes card events to connected gallery clients over
// websocket, so an open collection view refreshes when a scan lands.
package notify

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/AllanGabay/vitadex/pkg/models"
)

const CardCreatedEventType = "card.created"

// CardEvent announces a freshly persisted card. Dedup hits do not
// produce events; the record already existed.
type CardEvent struct {
	Type       string        `json:"type"`
	CardID     string        `json:"cardId"`
	CommonName string        `json:"commonName"`
	Continent  string        `json:"continent"`
	Rarity     models.Rarity `json:"rarity"`
	OwnerID    string        `json:"ownerId"`
	At         time.Time     `json:"at"`
}

// NewCardEvent builds the broadcast payload for a stored record.
func NewCardEvent(rec *models.CardRecord) CardEvent {
	return CardEvent{
		Type:       CardCreatedEventType,
		CardID:     rec.ID,
		CommonName: rec.Metadata.CommonName,
		Continent:  rec.Metadata.Continent,
		Rarity:     rec.Metadata.Rarity,
		OwnerID:    rec.OwnerID,
		At:         time.Now().UTC(),
	}
}

type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Add(ws *websocket.Conn) {
	h.mu.Lock()
	h.clients[ws] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(ws *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, ws)
	h.mu.Unlock()
	_ = ws.Close()
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// BroadcastJSON sends v to every connected client, dropping clients
// whose writes fail.
func (h *Hub) BroadcastJSON(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ws := range h.clients {
		_ = ws.SetWriteDeadline(time.Now().Add(2 * time.Second))
		if err := ws.WriteMessage(websocket.TextMessage, b); err != nil {
			_ = ws.Close()
			delete(h.clients, ws)
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // OK for demo; restrict in production
	},
}

func WSHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		hub.Add(ws)
		log.Println("[ws] gallery client connected")

		// Keep connection alive (ignore incoming messages)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}

		hub.Remove(ws)
		log.Println("[ws] gallery client disconnected")
	}
}
