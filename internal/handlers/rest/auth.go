package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hearthforge/sheet-api/internal/errors"
	"github.com/hearthforge/sheet-api/internal/services/auth"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArgument("request body must be JSON with username and password"))
		return
	}

	out, err := h.authService.Register(c.Request.Context(), &auth.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"username": out.Username,
		"token":    out.Token,
	})
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArgument("request body must be JSON with username and password"))
		return
	}

	out, err := h.authService.Login(c.Request.Context(), &auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": out.Username,
		"token":    out.Token,
	})
}
