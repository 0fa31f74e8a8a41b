package util

import (
	"ProtectAdmin/internal/pkg/consts"
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
)

// GetSafeContentType 基于文件头嗅探真实类型，不信任客户端声明
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

// NormalizeThumbnail 把封面图等比缩放到最大宽度以内，统一转为 JPEG
// 避免管理员直接上传原片拖慢前台加载
func NormalizeThumbnail(reader io.Reader) (io.Reader, int64, error) {
	img, err := imaging.Decode(reader, imaging.AutoOrientation(true))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode thumbnail: %w", err)
	}

	if img.Bounds().Dx() > consts.ThumbnailMaxWidth {
		img = imaging.Resize(img, consts.ThumbnailMaxWidth, 0, imaging.Lanczos)
	}

	var out bytes.Buffer
	if err = imaging.Encode(&out, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, 0, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return bytes.NewReader(out.Bytes()), int64(out.Len()), nil
}
