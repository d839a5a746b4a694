package handler

import (
	"net/http"

	"github.com/blogapi/internal/service"
	"github.com/gin-gonic/gin"
)

type userRequest struct {
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// CreateUser 创建新用户
func (a *API) CreateUser(c *gin.Context) {
	var req userRequest
	if !bindJSON(c, &req, "username, first_name and last_name are required") {
		return
	}

	user, err := a.users.Create(service.UserInput{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		respondServiceError(c, err, "failed to create user")
		return
	}

	respondData(c, http.StatusCreated, user)
}
