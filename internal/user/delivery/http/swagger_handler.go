package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// Login godoc
// @Summary Staff login
// @Description Authenticate a staff account and get a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{username=string,password=string} true "Login credentials"
// @Success 200 {object} object{token=string,user=object}
// @Failure 401 {object} object{error=string}
// @Router /auth/login [post]
func (h *UserHandler) LoginDoc() {}

// GetProfile godoc
// @Summary Get current user profile
// @Description Get authenticated user's profile information
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{id=int,username=string,full_name=string,role=string,is_active=bool}
// @Failure 401 {object} object{error=string}
// @Router /users/me [get]
func (h *UserHandler) GetProfileDoc() {}

// ChangePassword godoc
// @Summary Change own password
// @Description Change the authenticated user's password
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{old_password=string,new_password=string} true "Password change data"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Router /users/me/password [put]
func (h *UserHandler) ChangePasswordDoc() {}

// CreateUser godoc
// @Summary Create staff account (admin)
// @Description Admin endpoint to create a new staff account with a role
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{username=string,password=string,full_name=string,email=string,role=string} true "User data"
// @Success 201 {object} object{id=int,username=string,full_name=string,role=string}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /admin/users [post]
func (h *UserHandler) CreateUserDoc() {}

// ListUsers godoc
// @Summary List staff accounts (admin)
// @Description Admin endpoint to list staff accounts with pagination
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} object{users=array,total=int,limit=int,offset=int}
// @Failure 403 {object} object{error=string}
// @Router /admin/users [get]
func (h *UserHandler) ListUsersDoc() {}

// ToggleActive godoc
// @Summary Enable or disable a staff account (admin)
// @Description Admin endpoint to activate or deactivate a staff account
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body object{is_active=bool} true "Active flag"
// @Success 200 {object} object{id=int,username=string,is_active=bool}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /admin/users/{id}/active [put]
func (h *UserHandler) ToggleActiveDoc() {}
