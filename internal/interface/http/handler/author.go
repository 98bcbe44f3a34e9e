package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	repo author.Repository
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(repo author.Repository) *AuthorHandler {
	return &AuthorHandler{repo: repo}
}

// Create 创建作者
// @Summary      创建作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      201 {object} dto.AuthorResponse
// @Failure      422 {object} response.Response "参数错误"
// @Failure      500 {object} response.Response "名字重复等存储错误"
// @Router       /authors [post]
func (h *AuthorHandler) Create(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.repo.Create(c.Request.Context(), middleware.MustGetSession(c), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewAuthorResponse(a))
}

// List 查询全部作者
// @Summary      作者列表
// @Tags         作者
// @Produce      json
// @Success      200 {array} dto.AuthorResponse
// @Router       /authors [get]
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.repo.List(c.Request.Context(), middleware.MustGetSession(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewAuthorListResponse(authors))
}

// Get 根据ID查询作者
// @Summary      作者详情
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} dto.AuthorResponse
// @Failure      404 {object} response.Response "作者不存在"
// @Failure      422 {object} response.Response "ID非法"
// @Router       /authors/{id} [get]
func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	a, err := h.repo.GetByID(c.Request.Context(), middleware.MustGetSession(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewAuthorResponse(a))
}

// GetByName 根据名字查询作者
// @Summary      按名字查询作者
// @Tags         作者
// @Produce      json
// @Param        name path string true "作者名"
// @Success      200 {object} dto.AuthorResponse
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /authors/by-name/{name} [get]
func (h *AuthorHandler) GetByName(c *gin.Context) {
	a, err := h.repo.GetByName(c.Request.Context(), middleware.MustGetSession(c), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewAuthorResponse(a))
}

// Update 部分更新作者
// @Summary      更新作者
// @Description  name缺省或为空时保持原值
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        id path int true "作者ID"
// @Param        request body dto.UpdateAuthorRequest true "更新内容"
// @Success      200 {object} dto.AuthorResponse
// @Failure      404 {object} response.Response "作者不存在"
// @Failure      422 {object} response.Response "参数错误"
// @Router       /authors/{id} [patch]
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAuthorRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.repo.UpdateByID(c.Request.Context(), middleware.MustGetSession(c), id, author.Update{Name: req.Name})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewAuthorResponse(a))
}

// Delete 删除作者
// @Summary      删除作者
// @Description  作者仍有图书时删除失败
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Notification
// @Failure      404 {object} response.Response "作者不存在"
// @Failure      500 {object} response.Response "存储错误"
// @Router       /authors/{id} [delete]
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	msg, err := h.repo.DeleteByID(c.Request.Context(), middleware.MustGetSession(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Notify(c, msg)
}
