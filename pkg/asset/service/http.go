package service

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/rwadex/rwa-dex-api/pkg/app/errors"
	apphttp "github.com/rwadex/rwa-dex-api/pkg/app/http"
	"github.com/rwadex/rwa-dex-api/pkg/asset"
	"github.com/rwadex/rwa-dex-api/pkg/auth"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the asset endpoints under /api/assets
func RegisterRoutes(r chi.Router, service Service, authn *auth.Middleware, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/api/assets", func(r chi.Router) {
		r.With(authn.Optional).Get("/", apphttp.HandleError(logger, h.list))
		r.Get("/featured", apphttp.HandleError(logger, h.featured))
		r.With(authn.Required).Post("/create", apphttp.HandleError(logger, h.create))
		r.With(authn.Optional).Get("/{address}", apphttp.HandleError(logger, h.get))
		r.Get("/{address}/history", apphttp.HandleError(logger, h.history))
	})
}

func (h *HTTP) list(w http.ResponseWriter, r *http.Request) error {
	q, err := asset.ParseQuery(r.URL.Query())
	if err != nil {
		return invalidParam(err)
	}
	res, err := h.service.ListAssets(r.Context(), q)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	viewer, _ := auth.SessionFromContext(r.Context())
	res, err := h.service.GetAsset(r.Context(), chi.URLParam(r, "address"), viewer)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}

func (h *HTTP) history(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()
	res, err := h.service.GetHistory(r.Context(), chi.URLParam(r, "address"), query.Get("period"), query.Get("interval"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}

func (h *HTTP) featured(w http.ResponseWriter, r *http.Request) error {
	res, err := h.service.GetFeatured(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}

func (h *HTTP) create(w http.ResponseWriter, r *http.Request) error {
	issuer := auth.AddressFromContext(r.Context())
	if issuer == "" {
		return apperrors.UnAuthorizedError(nil, "Authentication required")
	}

	var req asset.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apperrors.BadRequestError(err, "Request body too large")
		}
		return apperrors.BadRequestError(err, "Invalid JSON")
	}

	res, err := h.service.CreateAsset(r.Context(), issuer, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}

func invalidParam(err error) error {
	var pe *asset.InvalidParamError
	if errors.As(err, &pe) {
		return apperrors.ValidationError(err, pe.Error(), map[string]any{pe.Param: pe.Reason})
	}
	return apperrors.BadRequestError(err, "Invalid query parameters")
}
