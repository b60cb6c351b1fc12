package kds

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/table-order/utils"
)

// Event types
const (
	EventOrderCreate  = "order_create"
	EventOrderUpdate  = "order_update"
	EventTableCreate  = "table_create"
	EventTableUpdate  = "table_update"
	EventTableDelete  = "table_delete"
	EventMenuUpdate   = "menu_update"
	EventStaffNotif   = "staff_notification"
	EventFinanceTally = "finance_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

const (
	// writeWait bounds a single write to a client.
	writeWait = 10 * time.Second
	// sendBuffer is how many messages may queue for one client before it is
	// dropped as too slow.
	sendBuffer = 64
)

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

type client struct {
	conn     Conn
	username string
	send     chan []byte
}

// Hub holds the connected kitchen/staff screens and broadcasts events to them.
// Each client has its own queue and writer goroutine, so Broadcast never
// waits on a socket.
type Hub struct {
	mu      sync.Mutex
	clients map[Conn]*client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[Conn]*client)}
}

func (h *Hub) Register(conn Conn, username string) {
	c := &client{conn: conn, username: username, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	h.clients[conn] = c
	h.mu.Unlock()

	go h.writePump(c)
}

// Unregister stops the client's writer, which closes the connection once the
// queued messages are flushed.
func (h *Hub) Unregister(conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(conn)
}

func (h *Hub) removeLocked(conn Conn) {
	if c, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		close(c.send)
	}
}

func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish implements services.Publisher.
func (h *Hub) Publish(event string, data interface{}) {
	h.Broadcast(Message{Event: event, Data: data})
}

// Broadcast queues msg for every client. A client whose queue is full is
// dropped.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling %s message: %v", msg.Event, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn, c := range h.clients {
		select {
		case c.send <- data:
		default:
			utils.ErrorLogger.Printf("Dropping slow KDS client %s on %s", c.username, msg.Event)
			h.removeLocked(conn)
		}
	}
}

func (h *Hub) writePump(c *client) {
	defer c.conn.Close()

	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error sending to %s: %v", c.username, err)
			h.Unregister(c.conn)
			return
		}
	}
}
