package service

import (
	"ProtectAdmin/internal/api/dto"
	"ProtectAdmin/internal/pkg/consts"
	"ProtectAdmin/internal/pkg/events"
	"ProtectAdmin/internal/pkg/minio"
	"ProtectAdmin/internal/pkg/mongo"
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/jinzhu/copier"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
)

// GalleryService 相册只支持新增和删除，不提供编辑
type GalleryService interface {
	Create(ctx context.Context, photoDTO *dto.GalleryPhotoDTO, image *dto.FileUpload) (string, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*mongo.GalleryPhoto, error)
	List(ctx context.Context) ([]*mongo.GalleryPhoto, error)
}

type galleryServiceImpl struct {
	repo      mongo.GalleryRepo
	storage   ObjectStorage
	publisher EventPublisher
}

func NewGalleryService(repo mongo.GalleryRepo, storage ObjectStorage, publisher EventPublisher) GalleryService {
	return &galleryServiceImpl{
		repo:      repo,
		storage:   storage,
		publisher: publisher,
	}
}

func (s *galleryServiceImpl) Create(ctx context.Context, photoDTO *dto.GalleryPhotoDTO, image *dto.FileUpload) (string, error) {
	if image == nil {
		return "", ErrImageRequired
	}
	if !strings.HasPrefix(image.ContentType, consts.MimePrefixImage) {
		return "", ErrFileNotSupported
	}

	objectName := minio.BuildObjectName(consts.NamespaceGaleria, image.Filename)
	url, err := s.storage.Upload(ctx, objectName, image.Reader, image.Size, image.ContentType)
	if err != nil {
		log.ErrorContext(ctx, "gallery photo upload failed", "err", err)
		return "", UnExpectedError
	}

	photo := &mongo.GalleryPhoto{}
	if err = copier.Copy(photo, photoDTO); err != nil {
		return "", err
	}
	photo.URL = url

	id, err := s.repo.Insert(ctx, photo)
	if err != nil {
		return "", err
	}

	s.publisher.Publish(ctx, consts.CollectionGaleria, id, events.ActionCreate)
	return id, nil
}

func (s *galleryServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPhotoNotFound
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return ErrPhotoNotFound
		}
		return err
	}

	if objectName, ok := s.storage.ObjectNameFromURL(existing.URL); ok {
		if err = s.storage.Delete(ctx, objectName); err != nil {
			log.WarnContext(ctx, "failed to delete gallery photo from storage",
				"objectName", objectName, "err", err)
		}
	}

	s.publisher.Publish(ctx, consts.CollectionGaleria, id, events.ActionDelete)
	return nil
}

func (s *galleryServiceImpl) GetByID(ctx context.Context, id string) (*mongo.GalleryPhoto, error) {
	photo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, ErrPhotoNotFound
	}
	return photo, nil
}

func (s *galleryServiceImpl) List(ctx context.Context) ([]*mongo.GalleryPhoto, error) {
	return s.repo.List(ctx)
}
