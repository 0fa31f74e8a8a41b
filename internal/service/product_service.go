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

type ProductService interface {
	Create(ctx context.Context, productDTO *dto.ProductBaseDTO, image *dto.FileUpload) (string, error)
	Update(ctx context.Context, id string, productDTO *dto.ProductBaseDTO, image *dto.FileUpload) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*mongo.Product, error)
	List(ctx context.Context) ([]*mongo.Product, error)
}

type productServiceImpl struct {
	repo      mongo.ProductRepo
	storage   ObjectStorage
	publisher EventPublisher
}

func NewProductService(repo mongo.ProductRepo, storage ObjectStorage, publisher EventPublisher) ProductService {
	return &productServiceImpl{
		repo:      repo,
		storage:   storage,
		publisher: publisher,
	}
}

// Create 流程同文章：校验 → 传图 → 写库 → 发事件
func (s *productServiceImpl) Create(ctx context.Context, productDTO *dto.ProductBaseDTO, image *dto.FileUpload) (string, error) {
	if image == nil {
		return "", ErrImageRequired
	}
	if !strings.HasPrefix(image.ContentType, consts.MimePrefixImage) {
		return "", ErrFileNotSupported
	}

	objectName := minio.BuildObjectName(consts.NamespaceProdutos, image.Filename)
	url, err := s.storage.Upload(ctx, objectName, image.Reader, image.Size, image.ContentType)
	if err != nil {
		log.ErrorContext(ctx, "product image upload failed", "err", err)
		return "", UnExpectedError
	}

	product := &mongo.Product{}
	if err = copier.Copy(product, productDTO); err != nil {
		return "", err
	}
	product.ImagemURL = url

	id, err := s.repo.Insert(ctx, product)
	if err != nil {
		return "", err
	}

	s.publisher.Publish(ctx, consts.CollectionProdutos, id, events.ActionCreate)
	return id, nil
}

func (s *productServiceImpl) Update(ctx context.Context, id string, productDTO *dto.ProductBaseDTO, image *dto.FileUpload) error {
	if image != nil && !strings.HasPrefix(image.ContentType, consts.MimePrefixImage) {
		return ErrFileNotSupported
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}

	imagemURL := existing.ImagemURL
	if image != nil {
		objectName := minio.BuildObjectName(consts.NamespaceProdutos, image.Filename)
		imagemURL, err = s.storage.Upload(ctx, objectName, image.Reader, image.Size, image.ContentType)
		if err != nil {
			log.ErrorContext(ctx, "product image upload failed", "err", err)
			return UnExpectedError
		}
	}

	product := &mongo.Product{}
	if err = copier.Copy(product, productDTO); err != nil {
		return err
	}
	product.ImagemURL = imagemURL

	if err = s.repo.Update(ctx, id, product); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return ErrProductNotFound
		}
		return err
	}

	s.publisher.Publish(ctx, consts.CollectionProdutos, id, events.ActionUpdate)
	return nil
}

func (s *productServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return ErrProductNotFound
		}
		return err
	}

	if objectName, ok := s.storage.ObjectNameFromURL(existing.ImagemURL); ok {
		if err = s.storage.Delete(ctx, objectName); err != nil {
			log.WarnContext(ctx, "failed to delete product image from storage",
				"objectName", objectName, "err", err)
		}
	}

	s.publisher.Publish(ctx, consts.CollectionProdutos, id, events.ActionDelete)
	return nil
}

func (s *productServiceImpl) GetByID(ctx context.Context, id string) (*mongo.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *productServiceImpl) List(ctx context.Context) ([]*mongo.Product, error) {
	return s.repo.List(ctx)
}
