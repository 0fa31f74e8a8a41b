package handler

import (
	"ProtectAdmin/internal/api/dto"
	"ProtectAdmin/internal/pkg/consts"
	"ProtectAdmin/internal/pkg/redis"
	"ProtectAdmin/internal/pkg/response"
	"ProtectAdmin/internal/pkg/util"
	"ProtectAdmin/internal/service"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoSvc service.VideoService
}

func NewVideoHandler(videoSvc service.VideoService) *VideoHandler {
	return &VideoHandler{videoSvc: videoSvc}
}

// Create 表单字段 video 为视频文件、thumbnail 为封面；
// 可选 uploadId 用于前端轮询上传进度
func (s *VideoHandler) Create(c *gin.Context) {
	var videoDTO dto.VideoBaseDTO
	err := c.ShouldBind(&videoDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&videoDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	thumb, closeThumb, err := formFileUpload(c, "thumbnail")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer closeThumb()

	video, closeVideo, err := formFileUpload(c, "video")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer closeVideo()

	uploadID := c.PostForm("uploadId")
	onProgress := func(float64) {}
	if uploadID != "" {
		progressKey := consts.UploadProgressKey + uploadID
		onProgress = func(percent float64) {
			_ = redis.SetWithExpiration(c.Request.Context(), progressKey,
				fmt.Sprintf("%.2f", percent), 10*time.Minute)
		}
	}

	id, err := s.videoSvc.Create(c.Request.Context(), &videoDTO, thumb, video, onProgress)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{
		"id": id,
	})
}

// GetProgress 轮询指定 uploadId 的上传进度，未开始返回 0
func (s *VideoHandler) GetProgress(c *gin.Context) {
	uploadID := c.Param("upload_id")
	percent, err := redis.GetValue(c.Request.Context(), consts.UploadProgressKey+uploadID)
	if err != nil {
		response.Error(c, service.UnExpectedError)
		return
	}
	if percent == "" {
		percent = "0"
	}
	response.Success(c, map[string]string{
		"percent": percent,
	})
}

func (s *VideoHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	err := s.videoSvc.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *VideoHandler) List(c *gin.Context) {
	videos, err := s.videoSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, videos)
}
