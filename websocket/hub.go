package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// ChangeEvent is a row-change notification for one of the data tables. The
// frontend subscribes to these to refresh its in-memory views, the same way
// it previously listened to the hosted store's change channels. Delivery is
// at-least-once and ordering across tables is not guaranteed.
type ChangeEvent struct {
	Table string `json:"table"`
	Event string `json:"event"`
	ID    string `json:"id,omitempty"`
}

const (
	EventInsert = "INSERT"
	EventUpdate = "UPDATE"
	EventDelete = "DELETE"
)

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan ChangeEvent, 64)

func init() {
	go RunHub()
}

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case event := <-Broadcast:
			var dead []uuid.UUID

			clientsMu.RLock()
			for userID, conn := range clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error sending change event to client %s: %v", userID, err)
					conn.Close()
					dead = append(dead, userID)
				}
			}
			clientsMu.RUnlock()

			if len(dead) > 0 {
				clientsMu.Lock()
				for _, userID := range dead {
					delete(clients, userID)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// NotifyChange queues a change event for all connected clients. Handlers call
// this after every successful write so dashboards stay current.
func NotifyChange(table, event, id string) {
	select {
	case Broadcast <- ChangeEvent{Table: table, Event: event, ID: id}:
	default:
		log.Printf("⚠️ Change-event buffer full, dropping %s %s %s", table, event, id)
	}
}
