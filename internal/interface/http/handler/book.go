package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	repo book.Repository
}

// NewBookHandler 创建图书处理器
func NewBookHandler(repo book.Repository) *BookHandler {
	return &BookHandler{repo: repo}
}

// Create 创建图书
// @Summary      创建图书
// @Description  不校验作者是否存在,外键冲突返回500
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} dto.BookResponse
// @Failure      422 {object} response.Response "参数错误"
// @Failure      500 {object} response.Response "存储错误"
// @Router       /books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.repo.Create(c.Request.Context(), middleware.MustGetSession(c), req.Name, req.AuthorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewBookResponse(b))
}

// List 查询全部图书
// @Summary      图书列表
// @Tags         图书
// @Produce      json
// @Success      200 {array} dto.BookResponse
// @Router       /books [get]
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.repo.List(c.Request.Context(), middleware.MustGetSession(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewBookListResponse(books))
}

// Get 根据ID查询图书
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      422 {object} response.Response "ID非法"
// @Router       /books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	b, err := h.repo.GetByID(c.Request.Context(), middleware.MustGetSession(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewBookResponse(b))
}

// GetByName 根据书名查询图书
// @Summary      按书名查询图书
// @Tags         图书
// @Produce      json
// @Param        name path string true "书名"
// @Success      200 {object} dto.BookResponse
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /books/by-name/{name} [get]
func (h *BookHandler) GetByName(c *gin.Context) {
	b, err := h.repo.GetByName(c.Request.Context(), middleware.MustGetSession(c), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewBookResponse(b))
}

// GetByAuthor 查询作者的图书
// @Summary      按作者查询图书
// @Tags         图书
// @Produce      json
// @Param        author_id path int true "作者ID"
// @Success      200 {object} dto.BookResponse
// @Failure      404 {object} response.Response "该作者没有图书"
// @Failure      422 {object} response.Response "ID非法"
// @Router       /books/by-author/{author_id} [get]
func (h *BookHandler) GetByAuthor(c *gin.Context) {
	authorID, ok := pathID(c, "author_id")
	if !ok {
		return
	}

	b, err := h.repo.GetByAuthorID(c.Request.Context(), middleware.MustGetSession(c), authorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewBookResponse(b))
}

// Update 部分更新图书
// @Summary      更新图书
// @Description  name缺省或为空时保持原值,author_id必填且总是写入
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "更新内容"
// @Success      200 {object} dto.BookResponse
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      422 {object} response.Response "参数错误"
// @Router       /books/{id} [patch]
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.repo.UpdateByID(c.Request.Context(), middleware.MustGetSession(c), id, book.Update{
		Name:     req.Name,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewBookResponse(b))
}

// Delete 删除图书
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Notification
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
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
