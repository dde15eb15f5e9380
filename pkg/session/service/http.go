package service

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/rwadex/rwa-dex-api/pkg/app/errors"
	apphttp "github.com/rwadex/rwa-dex-api/pkg/app/http"
	"github.com/rwadex/rwa-dex-api/pkg/auth"
	"github.com/rwadex/rwa-dex-api/pkg/session"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the wallet login endpoints under /api/auth
func RegisterRoutes(r chi.Router, service Service, authn *auth.Middleware, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.Get("/nonce/{address}", apphttp.HandleError(logger, h.nonce))
		r.Post("/connect", apphttp.HandleError(logger, h.connect))
		r.Get("/verify", apphttp.HandleError(logger, h.verify))
		r.With(authn.Required).Post("/disconnect", apphttp.HandleError(logger, h.disconnect))
	})
}

func (h *HTTP) nonce(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.IssueNonce(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) connect(w http.ResponseWriter, r *http.Request) error {
	var req session.ConnectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return apperrors.BadRequestError(err, "Invalid JSON")
	}
	resp, err := h.service.Connect(r.Context(), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) verify(w http.ResponseWriter, r *http.Request) error {
	token, _ := auth.BearerToken(r)
	resp, err := h.service.Verify(r.Context(), token)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) disconnect(w http.ResponseWriter, r *http.Request) error {
	s, _ := auth.SessionFromContext(r.Context())
	resp, err := h.service.Disconnect(r.Context(), s)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}
