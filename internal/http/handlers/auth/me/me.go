// Package me отдаёт текущего пользователя по cookie сессии.
package me

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/mindora/mindora/internal/http/middlewarectx"
	"github.com/mindora/mindora/internal/http/response"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// ServeHTTP godoc
// @Summary Текущий пользователь
// @Tags Auth
// @Produce json
// @Success 200 {object} response.MeResponse
// @Failure 401 {object} response.MeResponse
// @Router /api/auth/me [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, ok := middlewarectx.PrincipalFrom(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.MeResponse{Authenticated: false})
		return
	}
	render.JSON(w, r, response.MeResponse{
		ID:            p.UserID,
		Username:      p.Username,
		Authenticated: true,
	})
}
