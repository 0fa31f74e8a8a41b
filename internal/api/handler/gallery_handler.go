package handler

import (
	"ProtectAdmin/internal/api/dto"
	"ProtectAdmin/internal/pkg/response"
	"ProtectAdmin/internal/pkg/util"
	"ProtectAdmin/internal/service"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	gallerySvc service.GalleryService
}

func NewGalleryHandler(gallerySvc service.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallerySvc: gallerySvc}
}

func (s *GalleryHandler) Create(c *gin.Context) {
	var photoDTO dto.GalleryPhotoDTO
	err := c.ShouldBind(&photoDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&photoDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	image, closeFn, err := formFileUpload(c, "image")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer closeFn()

	id, err := s.gallerySvc.Create(c.Request.Context(), &photoDTO, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{
		"id": id,
	})
}

func (s *GalleryHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	err := s.gallerySvc.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *GalleryHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	photo, err := s.gallerySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, photo)
}

func (s *GalleryHandler) List(c *gin.Context) {
	photos, err := s.gallerySvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, photos)
}
