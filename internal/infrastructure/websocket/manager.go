package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"patipazar/pkg/logger"
)

// Client is one WebSocket connection. A user may hold several concurrent
// connections; each registers separately.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte

	rooms map[string]bool
	mutex sync.Mutex
}

func NewClient(userID string, conn *websocket.Conn) *Client {
	return &Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 64),
		rooms:  make(map[string]bool),
	}
}

// Manager tracks active connections per user and per room. User channels are
// implicit (every connection belongs to its user's channel); conversation
// rooms are joined and left explicitly over the socket protocol.
type Manager struct {
	clients    map[string]map[*Client]bool
	rooms      map[string]map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]map[*Client]bool),
		rooms:      make(map[string]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				if m.clients[client.UserID] == nil {
					m.clients[client.UserID] = make(map[*Client]bool)
				}
				m.clients[client.UserID][client] = true
				m.mutex.Unlock()
				logger.Debug("Client registered: %s", client.UserID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if conns, ok := m.clients[client.UserID]; ok && conns[client] {
					delete(conns, client)
					if len(conns) == 0 {
						delete(m.clients, client.UserID)
					}
					for room := range client.rooms {
						m.removeFromRoom(client, room)
					}
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Debug("Client unregistered: %s", client.UserID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// SendToUser pushes a message onto every live connection of the user.
// Delivery is best effort: a connection with a full buffer is skipped.
func (m *Manager) SendToUser(userID string, message []byte) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for client := range m.clients[userID] {
		select {
		case client.Send <- message:
		default:
			logger.Warn("Dropping message for slow client: %s", userID)
		}
	}
}

// SendToRoom pushes a message to every client currently joined to the room.
func (m *Manager) SendToRoom(room string, message []byte) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for client := range m.rooms[room] {
		select {
		case client.Send <- message:
		default:
			logger.Warn("Dropping room message for slow client: %s", client.UserID)
		}
	}
}

func (m *Manager) JoinRoom(client *Client, room string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.rooms[room] == nil {
		m.rooms[room] = make(map[*Client]bool)
	}
	m.rooms[room][client] = true

	client.mutex.Lock()
	client.rooms[room] = true
	client.mutex.Unlock()
}

func (m *Manager) LeaveRoom(client *Client, room string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.removeFromRoom(client, room)

	client.mutex.Lock()
	delete(client.rooms, room)
	client.mutex.Unlock()
}

// caller must hold m.mutex
func (m *Manager) removeFromRoom(client *Client, room string) {
	if members, ok := m.rooms[room]; ok {
		delete(members, client)
		if len(members) == 0 {
			delete(m.rooms, room)
		}
	}
}
