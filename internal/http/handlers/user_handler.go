package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/nc-news/internal/domain"
)

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Username  string `json:"username"   example:"tickle122"`
	Name      string `json:"name"       example:"Tom Tickle"`
	AvatarURL string `json:"avatar_url" example:"https://vignette.wikia.nocookie.net/mrmen/images/d/d6/Mr-Tickle-9a.png"`
}

// UsersResponse wraps the user list.
type UsersResponse struct {
	Users []domain.User `json:"users"`
}

// UserResponse wraps a single user.
type UserResponse struct {
	User *domain.User `json:"user"`
}

// ListUsers godoc
// @ID          listUsers
// @Summary     List users
// @Tags        Users
// @Produce     json
// @Success     200  {object}  handlers.UsersResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users [get]
func (h *Handlers) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, UsersResponse{Users: users})
}

// GetUser godoc
// @ID          getUser
// @Summary     Get a user by username
// @Tags        Users
// @Produce     json
// @Param       username  path      string  true  "Username"  example(butter_bridge)
// @Success     200       {object}  handlers.UserResponse
// @Failure     404       {object}  handlers.ErrorResponse  "User not found"
// @Failure     500       {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users/{username} [get]
func (h *Handlers) GetUser(c *gin.Context) {
	u, err := h.users.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, UserResponse{User: u})
}

// CreateUser godoc
// @ID          createUser
// @Summary     Create a user
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.CreateUserRequest  true  "User"
// @Success     201   {object}  handlers.UserResponse
// @Failure     400   {object}  handlers.ErrorResponse  "Missing username or name"
// @Failure     500   {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users [post]
func (h *Handlers) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := bindJSON(c, &req, "username and name are required."); err != nil {
		respondError(c, err)
		return
	}
	u, err := h.users.Create(c.Request.Context(), req.Username, req.Name, req.AvatarURL)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, UserResponse{User: u})
}
