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

// GalleryRepo 相册没有编辑页，只有新增和删除
type GalleryRepo interface {
	Insert(ctx context.Context, photo *GalleryPhoto) (string, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*GalleryPhoto, error)
	List(ctx context.Context) ([]*GalleryPhoto, error)
}

type galleryRepoImpl struct {
	col *mongo.Collection
}

func NewGalleryRepo(db *mongo.Database) GalleryRepo {
	return &galleryRepoImpl{
		col: db.Collection(consts.CollectionGaleria),
	}
}

func (s *galleryRepoImpl) Insert(ctx context.Context, photo *GalleryPhoto) (string, error) {
	photo.CreatedAt = time.Now()
	res, err := s.col.InsertOne(ctx, photo)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

func (s *galleryRepoImpl) Delete(ctx context.Context, id string) error {
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

func (s *galleryRepoImpl) GetByID(ctx context.Context, id string) (*GalleryPhoto, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var photo GalleryPhoto
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&photo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &photo, nil
}

func (s *galleryRepoImpl) List(ctx context.Context) ([]*GalleryPhoto, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.col.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var photos []*GalleryPhoto
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, err
	}

	return photos, nil
}
