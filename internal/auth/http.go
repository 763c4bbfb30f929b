// Copyright (c) 2026 DevOpsCorp. All rights reserved.

package auth

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/devopscorp/auth-api/internal/platform/apperr"
	"github.com/devopscorp/auth-api/internal/platform/ctxutil"
	"github.com/devopscorp/auth-api/internal/platform/respond"
	"github.com/devopscorp/auth-api/internal/platform/validate"
)

// Handler implements the authentication HTTP endpoints.
//
// Handlers are responsible for JSON parsing, boundary validation, and mapping
// service results to the `{success, ...}` response envelopes. They contain no
// business logic or database queries.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// registerRequest represents the JSON payload expected for account creation.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/register.
//
// # Returns
//   - 201 {success,message,user} on success; the user never includes the hash.
//   - 400 {success,errors} with a field-keyed map if validation rules fail.
//   - 409 {success,error} if email (checked first) or username is taken.
//   - 500 {success,error} if the store fails.
func (handler *Handler) Register(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	// An empty body decodes to the zero value so the field checks below
	// report the missing fields; only malformed JSON is rejected outright.
	var input registerRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil && !errors.Is(err, io.EOF) {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	// One error per field; "required" wins over the length/format checks.
	v := &validate.Validator{}
	err := v.
		Required("username", input.Username, "Username is required").
		MinLen("username", input.Username, 3, "Username must be at least 3 characters").
		Required("email", input.Email, "Email is required").
		Email("email", input.Email, "Invalid email format").
		Required("password", input.Password, "Password is required").
		MinLen("password", input.Password, 6, "Password must be at least 6 characters").
		Err()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	user, err := handler.authService.Register(request.Context(), RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.Created(writer, map[string]any{
		"success": true,
		"message": "User registered successfully",
		"user":    user,
	})
}

// loginRequest represents the JSON payload expected for authentication.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/login.
//
// # Returns
//   - 200 {success,token,user} on success.
//   - 400 {success,error} if email or password is missing.
//   - 401 {success,error} for bad credentials — the same body whether the
//     email is unknown or the password is wrong.
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	// An empty body falls through to the missing-field response.
	var input loginRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil && !errors.Is(err, io.EOF) {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.Email == "" || input.Password == "" {
		respond.Error(writer, request, apperr.BadRequest("Email and password are required"))
		return
	}

	token, user, err := handler.authService.Login(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// Me handles GET /api/me. It runs behind the RequireAuth middleware, which
// guarantees verified claims are present on the context.
//
// # Returns
//   - 200 {success,user} with the freshly fetched account.
//   - 404 {success,error} if the account was deleted after token issuance.
func (handler *Handler) Me(writer http.ResponseWriter, request *http.Request) {
	claims := ctxutil.GetClaims(request.Context())
	if claims == nil {
		// Unreachable behind RequireAuth; kept as a guard against misrouting.
		respond.Error(writer, request, apperr.Unauthorized("No token provided"))
		return
	}

	user, err := handler.authService.CurrentUser(request.Context(), claims.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"success": true,
		"user":    user,
	})
}

// Logout handles POST /api/logout.
//
// Tokens are stateless and there is no server-side revocation; logout is a
// client-side concern (discard the token) and this endpoint succeeds
// unconditionally.
func (handler *Handler) Logout(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]any{
		"success": true,
		"message": "Logged out successfully",
	})
}
