package api

import "ProtectAdmin/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AuthHandler    *handler.AuthHandler
	PostHandler    *handler.PostHandler
	ProductHandler *handler.ProductHandler
	GalleryHandler *handler.GalleryHandler
	VideoHandler   *handler.VideoHandler
	WSHandler      *handler.WsHandler
}
