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

type PostService interface {
	Create(ctx context.Context, postDTO *dto.PostBaseDTO, image *dto.FileUpload) (string, error)
	Update(ctx context.Context, id string, postDTO *dto.PostBaseDTO, image *dto.FileUpload) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*mongo.Post, error)
	List(ctx context.Context) ([]*mongo.Post, error)
}

type postServiceImpl struct {
	repo      mongo.PostRepo
	storage   ObjectStorage
	publisher EventPublisher
}

func NewPostService(repo mongo.PostRepo, storage ObjectStorage, publisher EventPublisher) PostService {
	return &postServiceImpl{
		repo:      repo,
		storage:   storage,
		publisher: publisher,
	}
}

// Create 新建必须带封面图。校验不过不会触发任何网络调用；
// 上传失败则不写库；上传成功后写库失败，已传文件成为孤儿，由清理任务兜底。
func (s *postServiceImpl) Create(ctx context.Context, postDTO *dto.PostBaseDTO, image *dto.FileUpload) (string, error) {
	if image == nil {
		return "", ErrImageRequired
	}
	if !strings.HasPrefix(image.ContentType, consts.MimePrefixImage) {
		return "", ErrFileNotSupported
	}

	objectName := minio.BuildObjectName(consts.NamespaceNoticias, image.Filename)
	url, err := s.storage.Upload(ctx, objectName, image.Reader, image.Size, image.ContentType)
	if err != nil {
		log.ErrorContext(ctx, "post image upload failed", "err", err)
		return "", UnExpectedError
	}

	post := &mongo.Post{}
	if err = copier.Copy(post, postDTO); err != nil {
		return "", err
	}
	post.ImagemURL = url

	id, err := s.repo.Insert(ctx, post)
	if err != nil {
		return "", err
	}

	s.publisher.Publish(ctx, consts.CollectionNoticias, id, events.ActionCreate)
	return id, nil
}

// Update 不换图时沿用已存 URL；换图时旧文件不删（历史行为），交给清理任务。
func (s *postServiceImpl) Update(ctx context.Context, id string, postDTO *dto.PostBaseDTO, image *dto.FileUpload) error {
	if image != nil && !strings.HasPrefix(image.ContentType, consts.MimePrefixImage) {
		return ErrFileNotSupported
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPostNotFound
	}

	imagemURL := existing.ImagemURL
	if image != nil {
		objectName := minio.BuildObjectName(consts.NamespaceNoticias, image.Filename)
		imagemURL, err = s.storage.Upload(ctx, objectName, image.Reader, image.Size, image.ContentType)
		if err != nil {
			log.ErrorContext(ctx, "post image upload failed", "err", err)
			return UnExpectedError
		}
	}

	post := &mongo.Post{}
	if err = copier.Copy(post, postDTO); err != nil {
		return err
	}
	post.ImagemURL = imagemURL

	if err = s.repo.Update(ctx, id, post); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return ErrPostNotFound
		}
		return err
	}

	s.publisher.Publish(ctx, consts.CollectionNoticias, id, events.ActionUpdate)
	return nil
}

// Delete 先删库，结果即对外结果；随后 best-effort 删除封面文件，失败只记日志。
func (s *postServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPostNotFound
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return ErrPostNotFound
		}
		return err
	}

	if objectName, ok := s.storage.ObjectNameFromURL(existing.ImagemURL); ok {
		if err = s.storage.Delete(ctx, objectName); err != nil {
			log.WarnContext(ctx, "failed to delete post image from storage",
				"objectName", objectName, "err", err)
		}
	}

	s.publisher.Publish(ctx, consts.CollectionNoticias, id, events.ActionDelete)
	return nil
}

func (s *postServiceImpl) GetByID(ctx context.Context, id string) (*mongo.Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *postServiceImpl) List(ctx context.Context) ([]*mongo.Post, error) {
	return s.repo.List(ctx)
}
