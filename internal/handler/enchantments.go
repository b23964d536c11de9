package handler

import (
	"net/http"
	"time"

	"github.com/meganrobin/Item-Management-API/internal/catalog"
	"github.com/meganrobin/Item-Management-API/internal/domain"
	"github.com/meganrobin/Item-Management-API/internal/logger"
)

type CreateEnchantmentRequest struct {
	Name              string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	EffectDescription string `json:"effect_description" validate:"required,min=1,max=250"`
}

type UpdateEffectDescriptionRequest struct {
	EffectDescription string `json:"effect_description" validate:"required,min=1,max=250"`
}

type EnchantmentResponse struct {
	EnchantmentID     int       `json:"enchantment_id"`
	Name              string    `json:"name"`
	EffectDescription string    `json:"effect_description"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type EnchantmentListResponse struct {
	Enchantments []EnchantmentResponse `json:"enchantments"`
}

func toEnchantmentResponse(e *domain.Enchantment) EnchantmentResponse {
	return EnchantmentResponse{
		EnchantmentID:     e.ID,
		Name:              e.Name,
		EffectDescription: e.EffectDescription,
		UpdatedAt:         e.UpdatedAt,
	}
}

// HandleListEnchantments lists every enchantment
// @Summary List enchantments
// @Description List all enchantments, oldest first
// @Tags enchantments
// @Produce json
// @Success 200 {object} EnchantmentListResponse
// @Router /enchantments [get]
func HandleListEnchantments(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		enchantments, err := svc.ListEnchantments(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}

		resp := EnchantmentListResponse{Enchantments: make([]EnchantmentResponse, 0, len(enchantments))}
		for i := range enchantments {
			resp.Enchantments = append(resp.Enchantments, toEnchantmentResponse(&enchantments[i]))
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleCreateEnchantment adds an enchantment to the catalog
// @Summary Create enchantment
// @Description Add an enchantment under a unique name with a 1-250 character effect description
// @Tags enchantments
// @Accept json
// @Produce json
// @Param request body CreateEnchantmentRequest true "Enchantment details"
// @Success 201 {object} EnchantmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /enchantments [post]
func HandleCreateEnchantment(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateEnchantmentRequest
		if err := decodeAndValidate(w, r, &req, "create enchantment"); err != nil {
			return
		}

		e, err := svc.CreateEnchantment(r.Context(), req.Name, req.EffectDescription)
		if err != nil {
			log.Warn("Failed to create enchantment", "name", req.Name, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, toEnchantmentResponse(e))
	}
}

// HandleUpdateEffectDescription replaces an enchantment's effect description
// @Summary Update effect description
// @Description Replace an enchantment's effect description and refresh its timestamp
// @Tags enchantments
// @Accept json
// @Produce json
// @Param enchantmentID path int true "Enchantment ID"
// @Param request body UpdateEffectDescriptionRequest true "New effect description"
// @Success 200 {object} EnchantmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /enchantments/{enchantmentID}/effect-description [put]
func HandleUpdateEffectDescription(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		enchantmentID, ok := urlParamInt(w, r, "enchantmentID")
		if !ok {
			return
		}

		var req UpdateEffectDescriptionRequest
		if err := decodeAndValidate(w, r, &req, "update effect description"); err != nil {
			return
		}

		e, err := svc.UpdateEffectDescription(r.Context(), enchantmentID, req.EffectDescription)
		if err != nil {
			log.Warn("Failed to update effect description", "enchantmentID", enchantmentID, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, toEnchantmentResponse(e))
	}
}

// HandleDeleteEnchantment removes an enchantment
// @Summary Delete enchantment
// @Description Remove an enchantment; items carrying it simply lose it
// @Tags enchantments
// @Produce json
// @Param enchantmentID path int true "Enchantment ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /enchantments/{enchantmentID} [delete]
func HandleDeleteEnchantment(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		enchantmentID, ok := urlParamInt(w, r, "enchantmentID")
		if !ok {
			return
		}

		if err := svc.DeleteEnchantment(r.Context(), enchantmentID); err != nil {
			log.Warn("Failed to delete enchantment", "enchantmentID", enchantmentID, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Enchantment deleted"})
	}
}
