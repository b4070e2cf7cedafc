package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "catsgram-backend/internal/common/errors"
	"catsgram-backend/internal/common/validation"
	"catsgram-backend/internal/features/user/mapper"
	"catsgram-backend/internal/features/user/models"
	"catsgram-backend/internal/features/user/service"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

func (h *UserHandler) RegisterRoutes(router gin.IRouter) {
	users := router.Group("/users")
	{
		users.GET("", h.FindAll)
		users.POST("", h.Create)
		users.PUT("", h.Update)
		users.GET("/:userId", h.FindByID)
	}
}

// @Summary List users
// @Description Get all registered users. Passwords are never returned.
// @Tags users
// @Produce json
// @Success 200 {array} models.UserResponse "Users"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /users [get]
func (h *UserHandler) FindAll(c *gin.Context) {
	users, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserResponses(users))
}

// @Summary Create user
// @Description Register a user. Email is required and must be unique. The stored password is not echoed back.
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.CreateUserRequest true "New user"
// @Success 200 {object} models.UserResponse "Created user"
// @Failure 400 {object} middleware.ErrorResponse "Malformed body"
// @Failure 409 {object} middleware.ErrorResponse "Email already in use"
// @Failure 422 {object} middleware.ErrorResponse "Email missing"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewParameterNotValid("body", err.Error()))
		return
	}

	user, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserResponse(user))
}

// @Summary Update user
// @Description Update the fields present in the body; absent fields keep their values. The stored password is not echoed back.
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.UpdateUserRequest true "Fields to update"
// @Success 200 {object} models.UserResponse "Updated user"
// @Failure 400 {object} middleware.ErrorResponse "Malformed body"
// @Failure 404 {object} middleware.ErrorResponse "User not found"
// @Failure 409 {object} middleware.ErrorResponse "Email already in use"
// @Failure 422 {object} middleware.ErrorResponse "Id missing"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /users [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewParameterNotValid("body", err.Error()))
		return
	}

	user, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserResponse(user))
}

// @Summary Get user by ID
// @Description Get user information by ID. Passwords are never returned.
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} models.UserResponse "User data"
// @Failure 400 {object} middleware.ErrorResponse "Invalid id"
// @Failure 404 {object} middleware.ErrorResponse "User not found"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /users/{userId} [get]
func (h *UserHandler) FindByID(c *gin.Context) {
	id, err := validation.ParseID("userId", c.Param("userId"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserResponse(user))
}
