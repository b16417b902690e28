package chat

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"GamifyPlanner/backend/internal/database"
	"GamifyPlanner/backend/internal/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Client struct {
	id       string
	conn     *websocket.Conn
	teamID   uint
	userID   uint
	nickname string
}

// Hub fans chat messages out to the members of each team room. Rooms come
// and go with connections; history lives in the chat_messages table.
type Hub struct {
	mu    sync.RWMutex
	rooms map[uint]map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[uint]map[*Client]bool)}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type incoming struct {
	Text string `json:"text"`
}

type outgoing struct {
	UserID    uint      `json:"userId"`
	Nickname  string    `json:"nickname"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// ServeWS upgrades the connection and pumps messages for one team member.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, user *models.User) {
	if user.TeamID == nil {
		http.Error(w, "not on a team", http.StatusConflict)
		return
	}
	teamID := *user.TeamID

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "upgrade failed", http.StatusBadRequest)
		return
	}
	client := &Client{
		id:       uuid.NewString(),
		conn:     conn,
		teamID:   teamID,
		userID:   user.ID,
		nickname: user.Nickname,
	}

	h.mu.Lock()
	if h.rooms[teamID] == nil {
		h.rooms[teamID] = make(map[*Client]bool)
	}
	h.rooms[teamID][client] = true
	h.mu.Unlock()
	log.Printf("[CHAT] client=%s joined team=%d", client.id, teamID)

	defer func() {
		h.mu.Lock()
		delete(h.rooms[teamID], client)
		if len(h.rooms[teamID]) == 0 {
			delete(h.rooms, teamID)
		}
		h.mu.Unlock()
		_ = conn.Close()
		log.Printf("[CHAT] client=%s left team=%d", client.id, teamID)
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		h.handleIncoming(client, data)
	}
}

func (h *Hub) handleIncoming(c *Client, data []byte) {
	var msg incoming
	if err := json.Unmarshal(data, &msg); err != nil || msg.Text == "" {
		return
	}

	record := models.ChatMessage{
		TeamID:   c.teamID,
		UserID:   c.userID,
		Nickname: c.nickname,
		Text:     msg.Text,
	}
	if err := database.DB.Create(&record).Error; err != nil {
		log.Printf("[CHAT] failed to store message: %v", err)
		return
	}

	h.broadcast(c.teamID, outgoing{
		UserID:    record.UserID,
		Nickname:  record.Nickname,
		Text:      record.Text,
		CreatedAt: record.CreatedAt,
	})
}

func (h *Hub) broadcast(teamID uint, msg outgoing) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[teamID] {
		if err := client.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("[CHAT] write to client=%s failed: %v", client.id, err)
		}
	}
}
