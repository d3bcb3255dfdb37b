package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/vsinha/lotsize/pkg/domain/entities"
	"github.com/vsinha/lotsize/pkg/domain/services"
)

// PolicyRequest is the payload for POST /api/v1/policies.
type PolicyRequest struct {
	SKU           string  `json:"sku" validate:"required"`
	Description   string  `json:"description"`
	AnnualDemand  float64 `json:"annual_demand" validate:"required,gt=0"`
	OrderCost     float64 `json:"order_cost" validate:"required,gt=0"`
	HoldingCost   float64 `json:"holding_cost" validate:"required,gt=0"`
	UnitCost      float64 `json:"unit_cost" validate:"gte=0"`
	UnitOfMeasure string  `json:"unit_of_measure"`
}

// CurveRequest is the payload for POST /api/v1/curves.
type CurveRequest struct {
	PolicyRequest
	MinQty float64 `json:"min_qty" validate:"gte=0"`
	MaxQty float64 `json:"max_qty" validate:"gte=0"`
	Points int     `json:"points" validate:"gte=0"`
}

// CurveResponse carries the sampled cost curve for one item.
type CurveResponse struct {
	SKU    entities.SKU              `json:"sku"`
	Points []entities.CostCurvePoint `json:"points"`
}

// Handler exposes the lot-sizing endpoints.
type Handler struct {
	logger        zerolog.Logger
	validate      *validator.Validate
	defaultPoints int
}

// HandlerConfig configures the Handler dependencies.
type HandlerConfig struct {
	Logger        zerolog.Logger
	DefaultPoints int
}

// NewHandler constructs a Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	points := cfg.DefaultPoints
	if points < 2 {
		points = services.DefaultCurvePoints
	}
	return &Handler{
		logger:        cfg.Logger,
		validate:      validator.New(),
		defaultPoints: points,
	}
}

// Policy handles POST /api/v1/policies.
func (h *Handler) Policy(w http.ResponseWriter, r *http.Request) {
	var req PolicyRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	profile, err := profileFromRequest(req)
	if err != nil {
		JSONError(w, http.StatusUnprocessableEntity, "INVALID_PROFILE", err.Error(), nil)
		return
	}

	policy, err := services.PolicyFor(profile)
	if err != nil {
		JSONError(w, http.StatusUnprocessableEntity, "INVALID_PROFILE", err.Error(), nil)
		return
	}

	h.logger.Debug().Str("sku", string(policy.SKU)).Float64("order_qty", policy.OrderQuantity).Msg("policy computed")
	JSON(w, http.StatusOK, map[string]any{"data": policy})
}

// Curve handles POST /api/v1/curves.
func (h *Handler) Curve(w http.ResponseWriter, r *http.Request) {
	var req CurveRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	profile, err := profileFromRequest(req.PolicyRequest)
	if err != nil {
		JSONError(w, http.StatusUnprocessableEntity, "INVALID_PROFILE", err.Error(), nil)
		return
	}

	curveRange, err := h.resolveRange(req, profile)
	if err != nil {
		JSONError(w, http.StatusUnprocessableEntity, "INVALID_RANGE", err.Error(), nil)
		return
	}

	points, err := services.CostCurve(profile, curveRange)
	if err != nil {
		JSONError(w, http.StatusUnprocessableEntity, "INVALID_RANGE", err.Error(), nil)
		return
	}

	h.logger.Debug().Str("sku", string(profile.SKU)).Int("points", len(points)).Msg("cost curve sampled")
	JSON(w, http.StatusOK, map[string]any{"data": CurveResponse{SKU: profile.SKU, Points: points}})
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// resolveRange picks the explicit sweep range when one is supplied, otherwise
// brackets the item's economic order quantity.
func (h *Handler) resolveRange(req CurveRequest, profile *entities.ItemCostProfile) (services.CurveRange, error) {
	points := req.Points
	if points == 0 {
		points = h.defaultPoints
	}

	if req.MinQty > 0 || req.MaxQty > 0 {
		return services.CurveRange{MinQty: req.MinQty, MaxQty: req.MaxQty, Points: points}, nil
	}

	eoq, err := services.EconomicOrderQuantity(profile.AnnualDemand, profile.OrderCost, profile.HoldingCost)
	if err != nil {
		return services.CurveRange{}, err
	}
	return services.DefaultCurveRange(eoq, points), nil
}

func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON payload", nil)
		return false
	}

	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make([]string, 0, len(verrs))
			for _, verr := range verrs {
				details = append(details, verr.Error())
			}
			JSONError(w, http.StatusBadRequest, "VALIDATION", "request validation failed", details)
			return false
		}
		JSONError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return false
	}

	return true
}

func profileFromRequest(req PolicyRequest) (*entities.ItemCostProfile, error) {
	description := req.Description
	if description == "" {
		description = req.SKU
	}
	uom := req.UnitOfMeasure
	if uom == "" {
		uom = "EA"
	}
	return entities.NewItemCostProfile(
		entities.SKU(req.SKU),
		description,
		req.AnnualDemand,
		req.OrderCost,
		req.HoldingCost,
		req.UnitCost,
		uom,
	)
}
