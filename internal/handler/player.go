package handler

import (
	"net/http"
	"time"

	"github.com/meganrobin/Item-Management-API/internal/logger"
	"github.com/meganrobin/Item-Management-API/internal/player"
)

type CreatePlayerRequest struct {
	Username string `json:"username" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

type PlayerResponse struct {
	PlayerID  int       `json:"player_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// HandleCreatePlayer creates a player
// @Summary Create player
// @Description Register a new player under a unique username
// @Tags players
// @Accept json
// @Produce json
// @Param request body CreatePlayerRequest true "Player details"
// @Success 201 {object} PlayerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /players [post]
func HandleCreatePlayer(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreatePlayerRequest
		if err := decodeAndValidate(w, r, &req, "create player"); err != nil {
			return
		}

		p, err := svc.CreatePlayer(r.Context(), req.Username)
		if err != nil {
			log.Warn("Failed to create player", "username", req.Username, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, PlayerResponse{
			PlayerID:  p.ID,
			Username:  p.Username,
			CreatedAt: p.CreatedAt,
		})
	}
}

// HandleGetPlayer returns a single player
// @Summary Get player
// @Description Look up a player by id
// @Tags players
// @Produce json
// @Param playerID path int true "Player ID"
// @Success 200 {object} PlayerResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID} [get]
func HandleGetPlayer(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := urlParamInt(w, r, "playerID")
		if !ok {
			return
		}

		p, err := svc.GetPlayer(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, PlayerResponse{
			PlayerID:  p.ID,
			Username:  p.Username,
			CreatedAt: p.CreatedAt,
		})
	}
}
