package handler

import (
	"net/http"
	"time"

	"github.com/meganrobin/Item-Management-API/internal/catalog"
	"github.com/meganrobin/Item-Management-API/internal/domain"
	"github.com/meganrobin/Item-Management-API/internal/logger"
)

type CreateItemRequest struct {
	Name     string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	ItemType string `json:"item_type" validate:"required,itemtype"`
	Rarity   string `json:"rarity" validate:"required,rarity"`
}

type ItemResponse struct {
	ItemID    int       `json:"item_id"`
	Name      string    `json:"name"`
	ItemType  string    `json:"item_type"`
	Rarity    string    `json:"rarity"`
	CreatedAt time.Time `json:"created_at"`
}

type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

func toItemResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ItemID:    item.ID,
		Name:      item.Name,
		ItemType:  string(item.Type),
		Rarity:    string(item.Rarity),
		CreatedAt: item.CreatedAt,
	}
}

// HandleListItems lists catalog items
// @Summary List items
// @Description List catalog items, optionally filtered by type and rarity
// @Tags items
// @Produce json
// @Param item_type query string false "Filter by item type" Enums(weapon, food, clothing)
// @Param rarity query string false "Filter by rarity" Enums(common, uncommon, rare, epic, legendary)
// @Success 200 {object} ItemListResponse
// @Failure 400 {object} ErrorResponse
// @Router /items [get]
func HandleListItems(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := domain.ItemFilter{
			Type:   domain.ItemType(r.URL.Query().Get("item_type")),
			Rarity: domain.Rarity(r.URL.Query().Get("rarity")),
		}

		items, err := svc.ListItems(r.Context(), filter)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		resp := ItemListResponse{Items: make([]ItemResponse, 0, len(items))}
		for i := range items {
			resp.Items = append(resp.Items, toItemResponse(&items[i]))
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleGetItem returns a single catalog item
// @Summary Get item
// @Description Look up a catalog item by id
// @Tags items
// @Produce json
// @Param itemID path int true "Item ID"
// @Success 200 {object} ItemResponse
// @Failure 404 {object} ErrorResponse
// @Router /items/{itemID} [get]
func HandleGetItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := urlParamInt(w, r, "itemID")
		if !ok {
			return
		}

		item, err := svc.GetItem(r.Context(), itemID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, toItemResponse(item))
	}
}

// HandleCreateItem adds an item to the catalog
// @Summary Create item
// @Description Add an item to the catalog under a unique name
// @Tags items
// @Accept json
// @Produce json
// @Param request body CreateItemRequest true "Item details"
// @Success 201 {object} ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /items [post]
func HandleCreateItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateItemRequest
		if err := decodeAndValidate(w, r, &req, "create item"); err != nil {
			return
		}

		item, err := svc.CreateItem(r.Context(), req.Name, domain.ItemType(req.ItemType), domain.Rarity(req.Rarity))
		if err != nil {
			log.Warn("Failed to create item", "name", req.Name, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, toItemResponse(item))
	}
}

// HandleDeleteItem removes an item from the catalog
// @Summary Delete item
// @Description Remove a catalog item; inventory entries holding it are removed as well
// @Tags items
// @Produce json
// @Param itemID path int true "Item ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /items/{itemID} [delete]
func HandleDeleteItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		itemID, ok := urlParamInt(w, r, "itemID")
		if !ok {
			return
		}

		if err := svc.DeleteItem(r.Context(), itemID); err != nil {
			log.Warn("Failed to delete item", "itemID", itemID, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item deleted"})
	}
}
