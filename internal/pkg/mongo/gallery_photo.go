package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryPhoto 相册文档模型（集合 galeria）
type GalleryPhoto struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Category  string             `bson:"category" json:"category"`
	URL       string             `bson:"url" json:"url"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
