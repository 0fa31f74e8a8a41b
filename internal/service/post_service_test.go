package service

import (
	"ProtectAdmin/internal/api/dto"
	"ProtectAdmin/internal/pkg/consts"
	"ProtectAdmin/internal/pkg/events"
	"ProtectAdmin/internal/pkg/mongo"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPostFixture() (*MockPostRepo, *MockObjectStorage, *MockEventPublisher, PostService) {
	repo := new(MockPostRepo)
	storage := new(MockObjectStorage)
	publisher := new(MockEventPublisher)
	return repo, storage, publisher, NewPostService(repo, storage, publisher)
}

func imageUpload() *dto.FileUpload {
	return &dto.FileUpload{
		Filename:    "capa.jpg",
		Size:        1024,
		ContentType: "image/jpeg",
		Reader:      strings.NewReader("fake image bytes"),
	}
}

func TestPostCreate(t *testing.T) {
	repo, storage, publisher, svc := newPostFixture()

	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, int64(1024), "image/jpeg").
		Return("http://minio/protect/noticias/1_capa.jpg", nil)
	repo.On("Insert", mock.Anything, mock.Anything).Return("abc123", nil)
	publisher.On("Publish", mock.Anything, consts.CollectionNoticias, "abc123", events.ActionCreate)

	postDTO := &dto.PostBaseDTO{
		Titulo:    "Campeonato interno",
		Categoria: "Eventos",
		Data:      "2025-03-10",
		Conteudo:  "<p>hi</p>",
	}
	id, err := svc.Create(context.Background(), postDTO, imageUpload())

	assert.NoError(t, err)
	assert.Equal(t, "abc123", id)

	// object name carries the collection namespace
	assert.Len(t, storage.Uploads, 1)
	assert.True(t, strings.HasPrefix(storage.Uploads[0], consts.NamespaceNoticias))
	assert.True(t, strings.HasSuffix(storage.Uploads[0], "_capa.jpg"))

	// HTML content is stored verbatim, URL from storage is merged in
	inserted := repo.Calls[0].Arguments.Get(1).(*mongo.Post)
	assert.Equal(t, "<p>hi</p>", inserted.Conteudo)
	assert.Equal(t, "http://minio/protect/noticias/1_capa.jpg", inserted.ImagemURL)

	publisher.AssertExpectations(t)
}

func TestPostCreate_NoImage(t *testing.T) {
	repo, storage, publisher, svc := newPostFixture()

	_, err := svc.Create(context.Background(), &dto.PostBaseDTO{
		Titulo: "t", Categoria: "Clube", Data: "2025-01-01", Conteudo: "c",
	}, nil)

	assert.ErrorIs(t, err, ErrImageRequired)
	// nothing leaves the process when validation fails
	storage.AssertNotCalled(t, "Upload")
	repo.AssertNotCalled(t, "Insert")
	publisher.AssertNotCalled(t, "Publish")
}

func TestPostCreate_WrongFileType(t *testing.T) {
	_, storage, _, svc := newPostFixture()

	file := imageUpload()
	file.ContentType = "application/pdf"
	_, err := svc.Create(context.Background(), &dto.PostBaseDTO{
		Titulo: "t", Categoria: "Clube", Data: "2025-01-01", Conteudo: "c",
	}, file)

	assert.ErrorIs(t, err, ErrFileNotSupported)
	storage.AssertNotCalled(t, "Upload")
}

func TestPostCreate_UploadFails(t *testing.T) {
	repo, storage, publisher, svc := newPostFixture()

	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("connection refused"))

	_, err := svc.Create(context.Background(), &dto.PostBaseDTO{
		Titulo: "t", Categoria: "Clube", Data: "2025-01-01", Conteudo: "c",
	}, imageUpload())

	assert.ErrorIs(t, err, UnExpectedError)
	// upload failure aborts before any document is written
	repo.AssertNotCalled(t, "Insert")
	publisher.AssertNotCalled(t, "Publish")
}

func TestPostUpdate_KeepsImageWhenNotReplaced(t *testing.T) {
	repo, storage, publisher, svc := newPostFixture()

	existing := &mongo.Post{ImagemURL: "http://minio/protect/noticias/1_old.jpg"}
	repo.On("GetByID", mock.Anything, "abc123").Return(existing, nil)
	repo.On("Update", mock.Anything, "abc123", mock.Anything).Return(nil)
	publisher.On("Publish", mock.Anything, consts.CollectionNoticias, "abc123", events.ActionUpdate)

	err := svc.Update(context.Background(), "abc123", &dto.PostBaseDTO{
		Titulo: "novo título", Categoria: "Clube", Data: "2025-01-01", Conteudo: "c",
	}, nil)

	assert.NoError(t, err)
	storage.AssertNotCalled(t, "Upload")

	updated := repo.Calls[1].Arguments.Get(2).(*mongo.Post)
	assert.Equal(t, "http://minio/protect/noticias/1_old.jpg", updated.ImagemURL)
}

func TestPostUpdate_ReplacesImage(t *testing.T) {
	repo, storage, publisher, svc := newPostFixture()

	existing := &mongo.Post{ImagemURL: "http://minio/protect/noticias/1_old.jpg"}
	repo.On("GetByID", mock.Anything, "abc123").Return(existing, nil)
	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("http://minio/protect/noticias/2_capa.jpg", nil)
	repo.On("Update", mock.Anything, "abc123", mock.Anything).Return(nil)
	publisher.On("Publish", mock.Anything, consts.CollectionNoticias, "abc123", events.ActionUpdate)

	err := svc.Update(context.Background(), "abc123", &dto.PostBaseDTO{
		Titulo: "t", Categoria: "Clube", Data: "2025-01-01", Conteudo: "c",
	}, imageUpload())

	assert.NoError(t, err)

	updated := repo.Calls[1].Arguments.Get(2).(*mongo.Post)
	assert.Equal(t, "http://minio/protect/noticias/2_capa.jpg", updated.ImagemURL)

	// the replaced file is not deleted inline, the cleanup job reclaims it
	storage.AssertNotCalled(t, "Delete")
}

func TestPostUpdate_NotFound(t *testing.T) {
	repo, _, _, svc := newPostFixture()

	repo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	err := svc.Update(context.Background(), "missing", &dto.PostBaseDTO{
		Titulo: "t", Categoria: "Clube", Data: "2025-01-01", Conteudo: "c",
	}, nil)

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostDelete(t *testing.T) {
	repo, storage, publisher, svc := newPostFixture()

	existing := &mongo.Post{ImagemURL: "http://minio/protect/noticias/1_capa.jpg"}
	repo.On("GetByID", mock.Anything, "abc123").Return(existing, nil)
	repo.On("Delete", mock.Anything, "abc123").Return(nil)
	storage.On("ObjectNameFromURL", existing.ImagemURL).Return("noticias/1_capa.jpg", true)
	storage.On("Delete", mock.Anything, "noticias/1_capa.jpg").Return(nil)
	publisher.On("Publish", mock.Anything, consts.CollectionNoticias, "abc123", events.ActionDelete)

	err := svc.Delete(context.Background(), "abc123")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
	storage.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestPostDelete_StorageFailureIsSwallowed(t *testing.T) {
	repo, storage, publisher, svc := newPostFixture()

	existing := &mongo.Post{ImagemURL: "http://minio/protect/noticias/1_capa.jpg"}
	repo.On("GetByID", mock.Anything, "abc123").Return(existing, nil)
	repo.On("Delete", mock.Anything, "abc123").Return(nil)
	storage.On("ObjectNameFromURL", existing.ImagemURL).Return("noticias/1_capa.jpg", true)
	storage.On("Delete", mock.Anything, "noticias/1_capa.jpg").Return(errors.New("timeout"))
	publisher.On("Publish", mock.Anything, consts.CollectionNoticias, "abc123", events.ActionDelete)

	// DB delete already happened, storage failure does not change the result
	err := svc.Delete(context.Background(), "abc123")
	assert.NoError(t, err)
}

func TestPostDelete_NotFound(t *testing.T) {
	repo, storage, _, svc := newPostFixture()

	repo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	err := svc.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrPostNotFound)
	storage.AssertNotCalled(t, "Delete")
}
