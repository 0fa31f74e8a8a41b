package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product 商品文档模型（集合 produtos）
type Product struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nome       string             `bson:"nome" json:"nome"`
	Preco      string             `bson:"preco" json:"preco"` // 自由文本，允许 "Sob Consulta"，不做数值转换
	Categoria  string             `bson:"categoria" json:"categoria"`
	Descricao  string             `bson:"descricao" json:"descricao"`
	LinkCompra string             `bson:"linkCompra" json:"linkCompra"`
	ImagemURL  string             `bson:"imagem_URL" json:"imagem_URL"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
