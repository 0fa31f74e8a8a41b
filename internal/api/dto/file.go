package dto

import "io"

// FileUpload 一次提交中待上传的本地文件载荷
type FileUpload struct {
	Filename    string
	Size        int64
	ContentType string
	Reader      io.Reader
}
