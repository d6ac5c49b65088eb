package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderFeedHub pushes freshly placed orders to the owner dashboards watching
// a restaurant. One restaurant can have several open dashboards.
type OrderFeedHub struct {
	clients    map[uint]map[*websocket.Conn]bool // restaurantID -> connections
	broadcast  chan feedEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn         *websocket.Conn
	RestaurantID uint
}

type feedEvent struct {
	RestaurantID uint
	Payload      []byte
}

func NewOrderFeedHub() *OrderFeedHub {
	return &OrderFeedHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan feedEvent, 16),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// Run owns the clients map; call it once in a goroutine.
func (h *OrderFeedHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RestaurantID] == nil {
				h.clients[sub.RestaurantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RestaurantID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if conns := h.clients[sub.RestaurantID]; conns != nil {
				delete(conns, sub.Conn)
				if len(conns) == 0 {
					delete(h.clients, sub.RestaurantID)
				}
			}
			h.mu.Unlock()
			sub.Conn.Close()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.RestaurantID] {
				if err := conn.WriteMessage(websocket.TextMessage, ev.Payload); err != nil {
					conn.Close()
					delete(h.clients[ev.RestaurantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// NotifyNewOrder implements services.OrderNotifier. Slow or gone dashboards
// never block order intake; a full channel drops the event.
func (h *OrderFeedHub) NotifyNewOrder(restaurantID uint, payload any) {
	data, err := json.Marshal(gin.H{"type": "order.created", "order": payload})
	if err != nil {
		return
	}
	select {
	case h.broadcast <- feedEvent{RestaurantID: restaurantID, Payload: data}:
	default:
		log.Println("order feed full, dropping event")
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // CORS handled upstream
}

// Serve upgrades an authenticated owner connection and parks it on the hub
// until the client goes away.
func (h *OrderFeedHub) Serve(c *gin.Context, restaurantID uint) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("ws upgrade failed:", err)
		return
	}

	sub := subscription{Conn: conn, RestaurantID: restaurantID}
	h.register <- sub

	// reader loop exists only to detect close
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
