package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post 新闻文档模型（集合 noticias）
// 字段名与线上站点正在读取的历史数据保持一致，不做翻译
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Titulo    string             `bson:"titulo" json:"titulo"`
	Categoria string             `bson:"categoria" json:"categoria"`
	Data      string             `bson:"data" json:"data"`         // 展示用发布日期，保持字符串
	Conteudo  string             `bson:"conteudo" json:"conteudo"` // 富文本 HTML，原样存取，不转义
	ImagemURL string             `bson:"imagem_URL" json:"imagem_URL"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"` // 服务端写入时间
}
