package handlers

import (
	"net/http"
	"strconv"

	"go-blog-api/helper"
	"go-blog-api/middleware"
	"go-blog-api/models"
	"go-blog-api/services"
	"go-blog-api/validation"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService services.PostService
	validator   *validation.Validator
	Helper      *helper.HTTPHelper
}

func NewPostHandler(postService services.PostService, validator *validation.Validator) *PostHandler {
	return &PostHandler{
		postService: postService,
		validator:   validator,
		Helper:      &helper.HTTPHelper{},
	}
}

// ListPosts returns every published post, newest first, as a plain array.
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPublished()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	post, err := h.postService.GetPost(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	if fieldErrors := h.validator.PostInput(req); fieldErrors != nil {
		h.Helper.SendValidationError(c, fieldErrors)
		return
	}

	post, err := h.postService.CreatePost(req, identity)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	id, ok := h.postID(c)
	if !ok {
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	if fieldErrors := h.validator.PostPatch(req); fieldErrors != nil {
		h.Helper.SendValidationError(c, fieldErrors)
		return
	}

	post, err := h.postService.UpdatePost(id, req, identity)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	id, ok := h.postID(c)
	if !ok {
		return
	}

	if err := h.postService.DeletePost(id, identity); err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// postID parses the :id parameter. An unparseable id names a post that cannot
// exist, so it reads as not found rather than a malformed request.
func (h *PostHandler) postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendError(c, models.ErrNotFound)
		return 0, false
	}
	return uint(id), true
}
