package websocket

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/wfunc/fraud-game/internal/logger"
	"github.com/wfunc/fraud-game/internal/models"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// 大屏展示页来自任意来源
		return true
	},
}

// Event 推送给客户端的事件
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// client 单个websocket连接
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub websocket连接中心
// 排行榜展示页通过它接收结果保存事件，实时刷新。
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	log     *zap.Logger
}

// NewHub 创建连接中心
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		log:     logger.GetModuleLogger("websocket"),
	}
}

// HandleWS gin处理函数，升级连接并注册到中心
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket升级失败", zap.Error(err))
		return
	}

	cl := &client{
		conn: conn,
		send: make(chan []byte, 16),
	}

	h.mu.Lock()
	h.clients[cl] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	h.log.Info("websocket客户端已连接",
		zap.String("remote", conn.RemoteAddr().String()),
		zap.Int("clients", count))

	go h.writePump(cl)
	go h.readPump(cl)
}

// readPump 读取循环（只处理控制帧，丢弃客户端消息）
func (h *Hub) readPump(cl *client) {
	defer h.remove(cl)

	cl.conn.SetReadLimit(512)
	cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		cl.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump 写入循环
func (h *Hub) writePump(cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		h.remove(cl)
	}()

	for {
		select {
		case msg, ok := <-cl.send:
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// remove 注销并关闭连接
func (h *Hub) remove(cl *client) {
	h.mu.Lock()
	if _, ok := h.clients[cl]; ok {
		delete(h.clients, cl)
		close(cl.send)
	}
	h.mu.Unlock()

	cl.conn.Close()
}

// Broadcast 向所有客户端广播事件
// 发送缓冲已满的慢客户端直接断开。
func (h *Hub) Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.log.Error("事件序列化失败", zap.Error(err))
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for cl := range h.clients {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	for _, cl := range clients {
		select {
		case cl.send <- data:
		default:
			h.remove(cl)
		}
	}
}

// BroadcastResultSaved 广播结果保存事件
func (h *Hub) BroadcastResultSaved(result *models.MatchResult) {
	h.Broadcast(Event{
		Type: "result_saved",
		Data: result,
	})
}

// ClientCount 返回当前连接数
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
