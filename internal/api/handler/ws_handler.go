package handler

import (
	"ProtectAdmin/internal/pkg/consts"
	"ProtectAdmin/internal/pkg/redis"
	"ProtectAdmin/internal/pkg/response"
	"ProtectAdmin/internal/pkg/security"
	"ProtectAdmin/internal/service"
	"context"
	log "log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WsHandler 后台列表页的实时刷新通道：
// 订阅所选集合的变更频道，有写入就推给前端，前端收到后重拉列表
type WsHandler struct{}

func NewWsHandler() *WsHandler {
	return &WsHandler{}
}

func (s *WsHandler) Connect(c *gin.Context) {
	// WS 不走 Authorization 头，token 在查询串里
	token := c.Query("token")
	if token == "" {
		response.Error(c, service.UnauthorizedError)
		return
	}
	claims, err := security.ValidateToken(token)
	if err != nil {
		log.Warn("WS 鉴权失败", "err", err)
		response.Error(c, service.UnauthorizedError)
		return
	}
	adminID := claims.AdminID

	// collections=noticias,produtos 缺省订阅全部
	collectionsParam := c.Query("collections")
	collections := []string{
		consts.CollectionNoticias,
		consts.CollectionProdutos,
		consts.CollectionGaleria,
		consts.CollectionVideos,
	}
	if collectionsParam != "" {
		collections = strings.Split(collectionsParam, ",")
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WS 协议升级失败", "err", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	channels := make([]string, 0, len(collections))
	for _, collection := range collections {
		channels = append(channels, consts.ContentChannelPrefix+collection)
	}

	pubsub := redis.Subscribe(context.Background(), channels...)
	defer func() {
		_ = pubsub.Close()
	}()

	log.Info("管理员 WS 连接已建立", "adminID", adminID, "channels", len(channels))

	stopChan := make(chan struct{})

	// 读循环：监听客户端主动断开
	go func() {
		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				close(stopChan)
				return
			}
		}
	}()

	// 写循环：监听 Redis 并推送至客户端
	redisCh := pubsub.Channel()
	for {
		select {
		case msg := <-redisCh:
			_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload))
			if err != nil {
				log.Error("WS 推送失败", "adminID", adminID, "err", err)
				return
			}
		case <-stopChan:
			log.Info("管理员 WS 连接已断开", "adminID", adminID)
			return
		}
	}
}
