package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/clinic-api/internal/middleware"
	"github.com/harentsoaR/clinic-api/internal/models"
	"github.com/harentsoaR/clinic-api/internal/store"
	"github.com/harentsoaR/clinic-api/internal/utils"
)

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Stores.Users.List(c.Request.Context())
	if err != nil {
		h.storeFailure(c, err, "Failed to retrieve users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpsertUser records the user behind :email and hands back a fresh token.
// Only profile fields are written; a role in the body is ignored.
func (h *Handler) UpsertUser(c *gin.Context) {
	email := c.Param("email")

	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.Stores.Users.Upsert(c.Request.Context(), email, profile)
	if err != nil {
		h.storeFailure(c, err, "Failed to save user")
		return
	}

	token, err := h.Tokens.Sign(email)
	if err != nil {
		h.Logger.Error().Err(err).Msg("could not sign token")
		utils.InternalServerError(c, "Could not generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "token": token})
}

// MakeAdmin grants the admin role to :email. The caller must be an admin.
func (h *Handler) MakeAdmin(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		utils.Unauthorized(c, "UnAuthorized access")
		return
	}

	requester, err := h.Stores.Users.FindByEmail(c.Request.Context(), claims.Email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.storeFailure(c, err, "Failed to load requester")
		return
	}
	if !requester.IsAdmin() {
		utils.Forbidden(c, "forbidden")
		return
	}

	result, err := h.Stores.Users.SetRole(c.Request.Context(), c.Param("email"), models.RoleAdmin)
	if err != nil {
		h.storeFailure(c, err, "Failed to update user role")
		return
	}
	c.JSON(http.StatusOK, result)
}

// CheckAdmin reports whether :email holds the admin role. Unknown users are
// not admins.
func (h *Handler) CheckAdmin(c *gin.Context) {
	user, err := h.Stores.Users.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.storeFailure(c, err, "Failed to load user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": user.IsAdmin()})
}
