package handler

import (
	"ProtectAdmin/internal/api/dto"
	"ProtectAdmin/internal/pkg/response"
	"ProtectAdmin/internal/pkg/util"
	"ProtectAdmin/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

// Create 表单字段 imagem 为封面文件，其余为文本字段
func (s *PostHandler) Create(c *gin.Context) {
	var postDTO dto.PostBaseDTO
	err := c.ShouldBind(&postDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&postDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	image, closeFn, err := formFileUpload(c, "imagem")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer closeFn()

	id, err := s.postSvc.Create(c.Request.Context(), &postDTO, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{
		"id": id,
	})
}

func (s *PostHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var postDTO dto.PostBaseDTO
	err := c.ShouldBind(&postDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&postDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	image, closeFn, err := formFileUpload(c, "imagem")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer closeFn()

	err = s.postSvc.Update(c.Request.Context(), id, &postDTO, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	err := s.postSvc.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	post, err := s.postSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) List(c *gin.Context) {
	posts, err := s.postSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}
