package service

import (
	"ProtectAdmin/internal/api/dto"
	"ProtectAdmin/internal/pkg/consts"
	"ProtectAdmin/internal/pkg/events"
	"ProtectAdmin/internal/pkg/mongo"
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newVideoFixture() (*MockVideoRepo, *MockObjectStorage, *MockEventPublisher, VideoService) {
	repo := new(MockVideoRepo)
	storage := new(MockObjectStorage)
	publisher := new(MockEventPublisher)
	return repo, storage, publisher, NewVideoService(repo, storage, publisher)
}

// thumbUpload 生成一张可解码的极小 PNG 作为封面
func thumbUpload(t *testing.T) *dto.FileUpload {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return &dto.FileUpload{
		Filename:    "capa.png",
		Size:        int64(buf.Len()),
		ContentType: "image/png",
		Reader:      &buf,
	}
}

func videoUpload() *dto.FileUpload {
	return &dto.FileUpload{
		Filename:    "treino.mp4",
		Size:        4096,
		ContentType: "video/mp4",
		Reader:      strings.NewReader("fake video bytes"),
	}
}

func TestVideoCreate(t *testing.T) {
	repo, storage, publisher, svc := newVideoFixture()

	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, "image/jpeg").
		Return("http://minio/protect/thumbnails/1_capa.png", nil)
	storage.On("UploadWithProgress", mock.Anything, mock.Anything, mock.Anything, int64(4096), "video/mp4").
		Return("http://minio/protect/videos/1_treino.mp4", nil)
	repo.On("Insert", mock.Anything, mock.Anything).Return("vid1", nil)
	publisher.On("Publish", mock.Anything, consts.CollectionVideos, "vid1", events.ActionCreate)

	var progress []float64
	id, err := svc.Create(context.Background(), &dto.VideoBaseDTO{
		Title:    "Treino tático",
		Category: "Treinamento",
	}, thumbUpload(t), videoUpload(), func(p float64) {
		progress = append(progress, p)
	})

	assert.NoError(t, err)
	assert.Equal(t, "vid1", id)

	// thumbnail is uploaded before the video
	assert.Len(t, storage.Uploads, 2)
	assert.True(t, strings.HasPrefix(storage.Uploads[0], consts.NamespaceThumbnails))
	assert.True(t, strings.HasPrefix(storage.Uploads[1], consts.NamespaceVideos))

	// progress callback received fractional values
	assert.Equal(t, []float64{0.5, 1.0}, progress)

	inserted := repo.Calls[0].Arguments.Get(1).(*mongo.Video)
	assert.Equal(t, "http://minio/protect/videos/1_treino.mp4", inserted.VideoURL)
	assert.Equal(t, "http://minio/protect/thumbnails/1_capa.png", inserted.Thumbnail)
	assert.Equal(t, consts.VideoTypeLocal, inserted.Type)
}

func TestVideoCreate_MissingFiles(t *testing.T) {
	repo, storage, _, svc := newVideoFixture()

	videoDTO := &dto.VideoBaseDTO{Title: "t", Category: "Clube"}

	_, err := svc.Create(context.Background(), videoDTO, nil, videoUpload(), nil)
	assert.ErrorIs(t, err, ErrVideoRequired)

	_, err = svc.Create(context.Background(), videoDTO, thumbUpload(t), nil, nil)
	assert.ErrorIs(t, err, ErrVideoRequired)

	storage.AssertNotCalled(t, "Upload")
	repo.AssertNotCalled(t, "Insert")
}

func TestVideoCreate_WrongVideoType(t *testing.T) {
	_, storage, _, svc := newVideoFixture()

	file := videoUpload()
	file.ContentType = "application/zip"
	_, err := svc.Create(context.Background(), &dto.VideoBaseDTO{
		Title: "t", Category: "Clube",
	}, thumbUpload(t), file, nil)

	assert.ErrorIs(t, err, ErrFileNotSupported)
	storage.AssertNotCalled(t, "Upload")
}

func TestVideoDelete(t *testing.T) {
	repo, storage, publisher, svc := newVideoFixture()

	existing := &mongo.Video{
		VideoURL:  "http://minio/protect/videos/1_treino.mp4",
		Thumbnail: "http://minio/protect/thumbnails/1_capa.png",
	}
	repo.On("GetByID", mock.Anything, "vid1").Return(existing, nil)
	repo.On("Delete", mock.Anything, "vid1").Return(nil)
	storage.On("ObjectNameFromURL", existing.VideoURL).Return("videos/1_treino.mp4", true)
	storage.On("ObjectNameFromURL", existing.Thumbnail).Return("thumbnails/1_capa.png", true)
	storage.On("Delete", mock.Anything, "videos/1_treino.mp4").Return(nil)
	storage.On("Delete", mock.Anything, "thumbnails/1_capa.png").Return(nil)
	publisher.On("Publish", mock.Anything, consts.CollectionVideos, "vid1", events.ActionDelete)

	err := svc.Delete(context.Background(), "vid1")

	assert.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestVideoDelete_SkipsForeignThumbnail(t *testing.T) {
	repo, storage, publisher, svc := newVideoFixture()

	existing := &mongo.Video{
		VideoURL:  "http://minio/protect/videos/1_treino.mp4",
		Thumbnail: "https://img.youtube.com/vi/abc/0.jpg",
	}
	repo.On("GetByID", mock.Anything, "vid1").Return(existing, nil)
	repo.On("Delete", mock.Anything, "vid1").Return(nil)
	storage.On("ObjectNameFromURL", existing.VideoURL).Return("videos/1_treino.mp4", true)
	storage.On("ObjectNameFromURL", existing.Thumbnail).Return("", false)
	storage.On("Delete", mock.Anything, "videos/1_treino.mp4").Return(nil)
	publisher.On("Publish", mock.Anything, consts.CollectionVideos, "vid1", events.ActionDelete)

	err := svc.Delete(context.Background(), "vid1")

	assert.NoError(t, err)
	// only the locally stored object is removed
	storage.AssertNumberOfCalls(t, "Delete", 1)
}
