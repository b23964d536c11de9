package handler

import (
	"net/http"

	"github.com/meganrobin/Item-Management-API/internal/domain"
	"github.com/meganrobin/Item-Management-API/internal/inventory"
	"github.com/meganrobin/Item-Management-API/internal/logger"
)

type AddItemRequest struct {
	ItemID   int `json:"item_id" validate:"required,min=1"`
	Quantity int `json:"quantity" validate:"required,min=1"`
}

type AddItemResponse struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

type RemoveItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

type RemoveItemResponse struct {
	ItemID    int `json:"item_id"`
	Remaining int `json:"remaining"`
}

type EnchantItemRequest struct {
	EnchantmentID int `json:"enchantment_id" validate:"required,min=1"`
}

type EnchantItemResponse struct {
	ItemID        int  `json:"item_id"`
	EnchantmentID int  `json:"enchantment_id"`
	Applied       bool `json:"applied"`
}

type RemoveEnchantmentsResponse struct {
	ItemID  int   `json:"item_id"`
	Removed int64 `json:"removed"`
}

type InventoryResponse struct {
	PlayerID int                   `json:"player_id"`
	Items    []domain.InventoryRow `json:"items"`
}

// HandleGetInventory returns a player's inventory
// @Summary Get inventory
// @Description List everything a player holds, most plentiful items first
// @Tags inventory
// @Produce json
// @Param playerID path int true "Player ID"
// @Success 200 {object} InventoryResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/inventory [get]
func HandleGetInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := urlParamInt(w, r, "playerID")
		if !ok {
			return
		}

		rows, err := svc.GetInventory(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, InventoryResponse{PlayerID: playerID, Items: rows})
	}
}

// HandleAddItem grants items to a player
// @Summary Add item to inventory
// @Description Add quantity units of an item to a player's inventory
// @Tags inventory
// @Accept json
// @Produce json
// @Param playerID path int true "Player ID"
// @Param request body AddItemRequest true "Item and quantity"
// @Success 200 {object} AddItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/inventory [post]
func HandleAddItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := urlParamInt(w, r, "playerID")
		if !ok {
			return
		}

		var req AddItemRequest
		if err := decodeAndValidate(w, r, &req, "add item"); err != nil {
			return
		}

		quantity, err := svc.AddItem(r.Context(), playerID, req.ItemID, req.Quantity)
		if err != nil {
			log.Warn("Failed to add item", "playerID", playerID, "itemID", req.ItemID, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, AddItemResponse{ItemID: req.ItemID, Quantity: quantity})
	}
}

// HandleRemoveItem takes items from a player
// @Summary Remove item from inventory
// @Description Remove quantity units of an item; removing the last unit drops the entry and its enchantments
// @Tags inventory
// @Accept json
// @Produce json
// @Param playerID path int true "Player ID"
// @Param itemID path int true "Item ID"
// @Param request body RemoveItemRequest true "Quantity to remove"
// @Success 200 {object} RemoveItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/inventory/{itemID} [delete]
func HandleRemoveItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := urlParamInt(w, r, "playerID")
		if !ok {
			return
		}
		itemID, ok := urlParamInt(w, r, "itemID")
		if !ok {
			return
		}

		var req RemoveItemRequest
		if err := decodeAndValidate(w, r, &req, "remove item"); err != nil {
			return
		}

		remaining, err := svc.RemoveItem(r.Context(), playerID, itemID, req.Quantity)
		if err != nil {
			log.Warn("Failed to remove item", "playerID", playerID, "itemID", itemID, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, RemoveItemResponse{ItemID: itemID, Remaining: remaining})
	}
}

// HandleEnchantItem applies an enchantment to a held item
// @Summary Enchant inventory item
// @Description Apply an enchantment to an item the player holds; reapplying is a no-op
// @Tags inventory
// @Accept json
// @Produce json
// @Param playerID path int true "Player ID"
// @Param itemID path int true "Item ID"
// @Param request body EnchantItemRequest true "Enchantment to apply"
// @Success 200 {object} EnchantItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/inventory/{itemID}/enchant [post]
func HandleEnchantItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := urlParamInt(w, r, "playerID")
		if !ok {
			return
		}
		itemID, ok := urlParamInt(w, r, "itemID")
		if !ok {
			return
		}

		var req EnchantItemRequest
		if err := decodeAndValidate(w, r, &req, "enchant item"); err != nil {
			return
		}

		applied, err := svc.EnchantItem(r.Context(), playerID, itemID, req.EnchantmentID)
		if err != nil {
			log.Warn("Failed to enchant item", "playerID", playerID, "itemID", itemID, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, EnchantItemResponse{
			ItemID:        itemID,
			EnchantmentID: req.EnchantmentID,
			Applied:       applied,
		})
	}
}

// HandleRemoveEnchantments strips every enchantment from a held item
// @Summary Remove all enchantments
// @Description Remove every enchantment from an item the player holds
// @Tags inventory
// @Produce json
// @Param playerID path int true "Player ID"
// @Param itemID path int true "Item ID"
// @Success 200 {object} RemoveEnchantmentsResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/inventory/{itemID}/enchantments [delete]
func HandleRemoveEnchantments(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := urlParamInt(w, r, "playerID")
		if !ok {
			return
		}
		itemID, ok := urlParamInt(w, r, "itemID")
		if !ok {
			return
		}

		removed, err := svc.RemoveEnchantments(r.Context(), playerID, itemID)
		if err != nil {
			log.Warn("Failed to remove enchantments", "playerID", playerID, "itemID", itemID, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, RemoveEnchantmentsResponse{ItemID: itemID, Removed: removed})
	}
}
