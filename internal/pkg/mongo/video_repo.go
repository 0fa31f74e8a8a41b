package mongo

import (
	"ProtectAdmin/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VideoRepo 视频只有新增和删除，没有编辑页
type VideoRepo interface {
	Insert(ctx context.Context, video *Video) (string, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Video, error)
	List(ctx context.Context) ([]*Video, error)
}

type videoRepoImpl struct {
	col *mongo.Collection
}

func NewVideoRepo(db *mongo.Database) VideoRepo {
	return &videoRepoImpl{
		col: db.Collection(consts.CollectionVideos),
	}
}

func (s *videoRepoImpl) Insert(ctx context.Context, video *Video) (string, error) {
	video.CreatedAt = time.Now()
	res, err := s.col.InsertOne(ctx, video)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

func (s *videoRepoImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *videoRepoImpl) GetByID(ctx context.Context, id string) (*Video, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var video Video
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &video, nil
}

func (s *videoRepoImpl) List(ctx context.Context) ([]*Video, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.col.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var videos []*Video
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}

	return videos, nil
}
