package middleware

import (
	"net/http"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/user"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AdminOnly requires the admin role
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ManagerOrAdmin requires the manager or admin role
func ManagerOrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrManagerPrivilegeRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || (role != string(user.RoleManager) && role != string(user.RoleAdmin)) {
			response.HandleError(w, user.ErrManagerPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
