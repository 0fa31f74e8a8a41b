package handler

import (
	"ProtectAdmin/internal/api/dto"
	"ProtectAdmin/internal/pkg/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// formFileUpload 读取一个表单文件字段，按文件头嗅探出真实类型。
// 字段缺失返回 (nil, nil, nil)，是否必填由 service 决定；
// 其它解析错误（如 multipart 体损坏）原样上抛。
// 返回的 close 由调用方 defer。
func formFileUpload(c *gin.Context, field string) (*dto.FileUpload, func(), error) {
	file, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, err
	}

	reader, err := file.Open()
	if err != nil {
		return nil, func() {}, err
	}
	closeFn := func() { _ = reader.Close() }

	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		closeFn()
		return nil, func() {}, err
	}

	return &dto.FileUpload{
		Filename:    file.Filename,
		Size:        file.Size,
		ContentType: contentType,
		Reader:      reader,
	}, closeFn, nil
}
