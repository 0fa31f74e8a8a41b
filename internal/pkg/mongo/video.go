package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video 视频文档模型（集合 videos）
type Video struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Category  string             `bson:"category" json:"category"`
	VideoURL  string             `bson:"videoUrl" json:"videoUrl"`
	Thumbnail string             `bson:"thumbnail" json:"thumbnail"`
	Type      string             `bson:"type" json:"type"` // 目前只有 local（直传）
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
