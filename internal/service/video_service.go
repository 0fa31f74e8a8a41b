package service

import (
	"ProtectAdmin/internal/api/dto"
	"ProtectAdmin/internal/pkg/consts"
	"ProtectAdmin/internal/pkg/events"
	"ProtectAdmin/internal/pkg/minio"
	"ProtectAdmin/internal/pkg/mongo"
	"ProtectAdmin/internal/pkg/util"
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/jinzhu/copier"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
)

// VideoService 视频和封面必须同时提交；封面先传，视频大文件走进度回调
type VideoService interface {
	Create(ctx context.Context, videoDTO *dto.VideoBaseDTO, thumb, video *dto.FileUpload, onProgress func(float64)) (string, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*mongo.Video, error)
}

type videoServiceImpl struct {
	repo      mongo.VideoRepo
	storage   ObjectStorage
	publisher EventPublisher
}

func NewVideoService(repo mongo.VideoRepo, storage ObjectStorage, publisher EventPublisher) VideoService {
	return &videoServiceImpl{
		repo:      repo,
		storage:   storage,
		publisher: publisher,
	}
}

func (s *videoServiceImpl) Create(ctx context.Context, videoDTO *dto.VideoBaseDTO, thumb, video *dto.FileUpload, onProgress func(float64)) (string, error) {
	if video == nil || thumb == nil {
		return "", ErrVideoRequired
	}
	if !strings.HasPrefix(video.ContentType, consts.MimePrefixVideo) {
		return "", ErrFileNotSupported
	}
	if !strings.HasPrefix(thumb.ContentType, consts.MimePrefixImage) {
		return "", ErrFileNotSupported
	}

	// 封面归一化后先传，封面失败就不浪费大文件的上传流量
	normalized, size, err := util.NormalizeThumbnail(thumb.Reader)
	if err != nil {
		log.ErrorContext(ctx, "thumbnail normalization failed", "err", err)
		return "", ErrFileNotSupported
	}

	thumbName := minio.BuildObjectName(consts.NamespaceThumbnails, thumb.Filename)
	thumbURL, err := s.storage.Upload(ctx, thumbName, normalized, size, "image/jpeg")
	if err != nil {
		log.ErrorContext(ctx, "video thumbnail upload failed", "err", err)
		return "", UnExpectedError
	}

	videoName := minio.BuildObjectName(consts.NamespaceVideos, video.Filename)
	videoURL, err := s.storage.UploadWithProgress(ctx, videoName, video.Reader, video.Size, video.ContentType, onProgress)
	if err != nil {
		log.ErrorContext(ctx, "video upload failed", "err", err)
		return "", UnExpectedError
	}

	doc := &mongo.Video{}
	if err = copier.Copy(doc, videoDTO); err != nil {
		return "", err
	}
	doc.VideoURL = videoURL
	doc.Thumbnail = thumbURL
	doc.Type = consts.VideoTypeLocal

	id, err := s.repo.Insert(ctx, doc)
	if err != nil {
		return "", err
	}

	s.publisher.Publish(ctx, consts.CollectionVideos, id, events.ActionCreate)
	return id, nil
}

// Delete 视频文件和封面都尝试删除；YouTube 等外链封面还原不出对象名，直接跳过
func (s *videoServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrVideoNotFound
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return ErrVideoNotFound
		}
		return err
	}

	for _, url := range []string{existing.VideoURL, existing.Thumbnail} {
		objectName, ok := s.storage.ObjectNameFromURL(url)
		if !ok {
			continue
		}
		if err = s.storage.Delete(ctx, objectName); err != nil {
			log.WarnContext(ctx, "failed to delete video object from storage",
				"objectName", objectName, "err", err)
		}
	}

	s.publisher.Publish(ctx, consts.CollectionVideos, id, events.ActionDelete)
	return nil
}

func (s *videoServiceImpl) List(ctx context.Context) ([]*mongo.Video, error) {
	return s.repo.List(ctx)
}
