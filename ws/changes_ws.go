package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Jordan10001/soramatcha-admin/pkg/changes"
)

// ChangeHub fans row-change notifications out to every connected dashboard
// tab, so a create in one modal shows up in every mounted list without a
// refetch.
type ChangeHub struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
	bus        *changes.Bus
}

func NewChangeHub(bus *changes.Bus) *ChangeHub {
	return &ChangeHub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		bus:        bus,
	}
}

func (h *ChangeHub) Run() {
	feed, cancel := h.bus.Subscribe()
	defer cancel()

	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case change, ok := <-feed:
			if !ok {
				return
			}
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(change); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/changes
func (h *ChangeHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn

	// Clients only listen; the read loop exists to notice the close.
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
