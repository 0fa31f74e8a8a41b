package job

import (
	"ProtectAdmin/internal/pkg/consts"
	"ProtectAdmin/internal/pkg/minio"
	"ProtectAdmin/internal/pkg/mongo"
	"context"
	log "log/slog"
	"time"
)

// MediaCleanupJob 清理孤儿文件：上传成功但写库失败、或换图后留下的旧文件
// 不会被任何文档引用，每天对账一次删掉。24 小时内的新对象不碰，
// 避免误删正在提交中的文件。
type MediaCleanupJob struct {
	postRepo    mongo.PostRepo
	productRepo mongo.ProductRepo
	galleryRepo mongo.GalleryRepo
	videoRepo   mongo.VideoRepo
}

func NewMediaCleanupJob(postRepo mongo.PostRepo, productRepo mongo.ProductRepo,
	galleryRepo mongo.GalleryRepo, videoRepo mongo.VideoRepo) *MediaCleanupJob {
	return &MediaCleanupJob{
		postRepo:    postRepo,
		productRepo: productRepo,
		galleryRepo: galleryRepo,
		videoRepo:   videoRepo,
	}
}

func (s *MediaCleanupJob) Run() {
	ctx := context.Background()
	log.Info("start media cleanup job")

	referenced, err := s.collectReferencedObjects(ctx)
	if err != nil {
		log.Error("failed to collect referenced objects", "err", err)
		return
	}

	namespaces := []string{
		consts.NamespaceNoticias,
		consts.NamespaceProdutos,
		consts.NamespaceGaleria,
		consts.NamespaceVideos,
		consts.NamespaceThumbnails,
	}

	cutoff := time.Now().Add(-24 * time.Hour)
	count := 0

	for _, namespace := range namespaces {
		objects, err := minio.ListObjects(ctx, namespace)
		if err != nil {
			log.Error("failed to list objects", "namespace", namespace, "err", err)
			continue
		}

		for _, obj := range objects {
			if referenced[obj.Key] {
				continue
			}
			if obj.LastModified.After(cutoff) {
				continue
			}

			if err = minio.DeleteFile(ctx, obj.Key); err != nil {
				log.Error("failed to delete orphan object", "objectName", obj.Key, "err", err)
				continue
			}
			count++
			log.Info("cleanup orphan object", "objectName", obj.Key)
		}
	}

	if count > 0 {
		log.Info("media cleanup job finished", "cleaned_count", count)
	}
}

// collectReferencedObjects 汇总四个集合里仍被引用的对象名
func (s *MediaCleanupJob) collectReferencedObjects(ctx context.Context) (map[string]bool, error) {
	referenced := make(map[string]bool)
	mark := func(url string) {
		if objectName, ok := minio.ObjectNameFromURL(url); ok {
			referenced[objectName] = true
		}
	}

	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		mark(post.ImagemURL)
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, product := range products {
		mark(product.ImagemURL)
	}

	photos, err := s.galleryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, photo := range photos {
		mark(photo.URL)
	}

	videos, err := s.videoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, video := range videos {
		mark(video.VideoURL)
		mark(video.Thumbnail)
	}

	return referenced, nil
}
