package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insights-api/pkg/log"
)

func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		response, err := service.Login(req.Email, req.Password)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("auth: falha no login")
			handleLoginError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, response)
	})
}

// handleLoginError traduz os erros de autenticação para códigos da API
func handleLoginError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authenticating.ErrMissingCredentials):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios", nil)

	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)

	case errors.Is(err, authenticating.ErrLoginDisabled):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Login administrativo não configurado", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
	}
}
