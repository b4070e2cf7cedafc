package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "catsgram-backend/internal/common/errors"
	"catsgram-backend/internal/common/validation"
	"catsgram-backend/internal/features/post/models"
	"catsgram-backend/internal/features/post/service"
)

type PostHandler struct {
	service service.PostService
}

func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{
		service: service,
	}
}

func (h *PostHandler) RegisterRoutes(router gin.IRouter) {
	posts := router.Group("/posts")
	{
		posts.GET("", h.FindAll)
		posts.POST("", h.Create)
		posts.PUT("", h.Update)
		posts.GET("/:postId", h.FindByID)
	}
}

// @Summary List posts
// @Description Posts ordered by publication date, then paginated
// @Tags posts
// @Produce json
// @Param sort query string false "asc or desc" default(desc)
// @Param from query int false "Entries to skip" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} models.Post "Posts"
// @Failure 400 {object} middleware.ErrorResponse "Invalid query parameter"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /posts [get]
func (h *PostHandler) FindAll(c *gin.Context) {
	q, err := parseListQuery(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	posts, err := h.service.FindAll(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// @Summary Create post
// @Description Publish a post for an existing author
// @Tags posts
// @Accept json
// @Produce json
// @Param post body models.CreatePostRequest true "New post"
// @Success 201 {object} models.Post "Created post"
// @Failure 400 {object} middleware.ErrorResponse "Malformed body"
// @Failure 422 {object} middleware.ErrorResponse "Blank description or unknown author"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewParameterNotValid("body", err.Error()))
		return
	}

	post, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// @Summary Update post
// @Description Replace the description of a post
// @Tags posts
// @Accept json
// @Produce json
// @Param post body models.UpdatePostRequest true "Post id and new description"
// @Success 200 {object} models.Post "Updated post"
// @Failure 400 {object} middleware.ErrorResponse "Malformed body"
// @Failure 404 {object} middleware.ErrorResponse "Post not found"
// @Failure 422 {object} middleware.ErrorResponse "Id missing or blank description"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /posts [put]
func (h *PostHandler) Update(c *gin.Context) {
	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewParameterNotValid("body", err.Error()))
		return
	}

	post, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// @Summary Get post by ID
// @Tags posts
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {object} models.Post "Post"
// @Failure 400 {object} middleware.ErrorResponse "Invalid id"
// @Failure 404 {object} middleware.ErrorResponse "Post not found"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /posts/{postId} [get]
func (h *PostHandler) FindByID(c *gin.Context) {
	id, err := validation.ParseID("postId", c.Param("postId"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	post, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if post == nil {
		_ = c.Error(apperrors.NewNotFound("post", id))
		return
	}

	c.JSON(http.StatusOK, post)
}

func parseListQuery(c *gin.Context) (models.ListQuery, error) {
	from, err := validation.ParseIntParam("from", c.Query("from"), validation.DefaultFrom)
	if err != nil {
		return models.ListQuery{}, err
	}
	size, err := validation.ParseIntParam("size", c.Query("size"), validation.DefaultSize)
	if err != nil {
		return models.ListQuery{}, err
	}
	sort := c.Query("sort")
	if sort == "" {
		sort = validation.DefaultSort
	}
	return models.NewListQuery(sort, from, size)
}
