package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/chinsis/paramdemo/internal/model"
	"github.com/chinsis/paramdemo/internal/server"
	"github.com/chinsis/paramdemo/internal/validation"
)

// UserHandler serves the user endpoints.
type UserHandler struct {
	Handler
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(s *server.Server) *UserHandler {
	return &UserHandler{Handler: NewHandler(s)}
}

// importanceDefault is the importance level assumed when the body does
// not provide one.
const importanceDefault = "medium"

// --- POST /users/create:user_id ---------------------------------------------

// CreateUserRequest declares the inputs of the user creation endpoint.
//
// Two body payloads in one request: user and item each sit under their
// own key. importance is a body-declared scalar with a default, and q
// is an optional query parameter; both are excluded from JSON binding
// where they do not belong. Importance is a pointer so an omitted key
// (defaulted) is distinguishable from a supplied empty string (rejected
// by the enum rule).
type CreateUserRequest struct {
	UserID     int         `param:"user_id" json:"-"`
	User       *model.User `json:"user" validate:"required"`
	Item       *model.Item `json:"item" validate:"required"`
	Importance *string     `json:"importance" validate:"required,oneof=low medium high"`
	Q          string      `query:"q" json:"-"`
}

// Normalize applies the importance default when the body omits it.
func (r *CreateUserRequest) Normalize(c echo.Context) {
	if r.Importance == nil {
		v := importanceDefault
		r.Importance = &v
	}
}

func (r *CreateUserRequest) Validate() error {
	return validation.Struct(r)
}

// CreateUser echoes user and item under their keys, plus q when
// supplied and the (possibly defaulted) importance.
func (h *UserHandler) CreateUser(c echo.Context, req *CreateUserRequest) (map[string]any, error) {
	results := map[string]any{
		"user": req.User,
		"item": req.Item,
	}

	if req.Q != "" {
		results["q"] = req.Q
	}
	if req.Importance != nil {
		results["importance"] = *req.Importance
	}
	return results, nil
}

// --- PUT /users/:user_id ----------------------------------------------------

// UpdateUserRequest declares an embedded user body: the payload must be
// {"user": {...}}, not the bare User fields at the top level. A flat
// body leaves User nil and fails the required rule.
type UpdateUserRequest struct {
	UserID int         `param:"user_id" json:"-"`
	User   *model.User `json:"user" validate:"required"`
}

func (r *UpdateUserRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateUser echoes user_id and the embedded user.
func (h *UserHandler) UpdateUser(c echo.Context, req *UpdateUserRequest) (map[string]any, error) {
	return map[string]any{
		"user_id": req.UserID,
		"user":    req.User,
	}, nil
}
