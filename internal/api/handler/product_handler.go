package handler

import (
	"ProtectAdmin/internal/api/dto"
	"ProtectAdmin/internal/pkg/response"
	"ProtectAdmin/internal/pkg/util"
	"ProtectAdmin/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productSvc service.ProductService
}

func NewProductHandler(productSvc service.ProductService) *ProductHandler {
	return &ProductHandler{productSvc: productSvc}
}

func (s *ProductHandler) Create(c *gin.Context) {
	var productDTO dto.ProductBaseDTO
	err := c.ShouldBind(&productDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&productDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	image, closeFn, err := formFileUpload(c, "imagem")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer closeFn()

	id, err := s.productSvc.Create(c.Request.Context(), &productDTO, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{
		"id": id,
	})
}

func (s *ProductHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var productDTO dto.ProductBaseDTO
	err := c.ShouldBind(&productDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&productDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	image, closeFn, err := formFileUpload(c, "imagem")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer closeFn()

	err = s.productSvc.Update(c.Request.Context(), id, &productDTO, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	err := s.productSvc.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ProductHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	product, err := s.productSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, product)
}

func (s *ProductHandler) List(c *gin.Context) {
	products, err := s.productSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, products)
}
