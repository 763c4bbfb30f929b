// Copyright (c) 2026 DevOpsCorp. All rights reserved.

package admin

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/devopscorp/auth-api/internal/auth"
	"github.com/devopscorp/auth-api/internal/platform/apperr"
	"github.com/devopscorp/auth-api/internal/platform/respond"
	"github.com/devopscorp/auth-api/internal/platform/validate"
)

// Handler implements the administrative HTTP endpoints.
type Handler struct {
	adminService *Service
}

// NewHandler constructs a new admin [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{adminService: service}
}

// ListUsers handles GET /api/users.
//
// # Returns
//   - 200 {success,users}; listed users never include password hashes.
func (handler *Handler) ListUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.adminService.ListUsers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"success": true,
		"users":   users,
	})
}

// updateRoleRequest represents the JSON payload for a role change.
type updateRoleRequest struct {
	Role string `json:"role"`
}

// UpdateRole handles PUT /api/users/{id}/role.
//
// # Returns
//   - 200 {success,message} on success.
//   - 400 {success,errors} if the role is not one of user/admin or the id is
//     not numeric.
//   - 404 {success,error} if the account does not exist.
func (handler *Handler) UpdateRole(writer http.ResponseWriter, request *http.Request) {
	id, err := userIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// An empty body falls through to the role validation below.
	var input updateRoleRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil && !errors.Is(err, io.EOF) {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	if err := v.OneOf("role", input.Role, string(auth.UserRoleUser), string(auth.UserRoleAdmin)).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.adminService.UpdateRole(request.Context(), id, auth.UserRole(input.Role)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"success": true,
		"message": "Role updated successfully",
	})
}

// DeleteUser handles DELETE /api/users/{id}.
//
// # Returns
//   - 200 {success,message} on success.
//   - 400 {success,error} if the id is not numeric.
//   - 404 {success,error} if the account does not exist.
func (handler *Handler) DeleteUser(writer http.ResponseWriter, request *http.Request) {
	id, err := userIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.adminService.DeleteUser(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"success": true,
		"message": "User deleted successfully",
	})
}

// userIDParam parses the {id} URL parameter as a positive integer.
func userIDParam(request *http.Request) (int64, error) {
	raw := chi.URLParam(request, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.BadRequest("Invalid user id")
	}
	return id, nil
}
