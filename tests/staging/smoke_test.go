//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
)

// TestInventoryLifecycle walks the full flow against a running instance:
// create a player, catalog entries, stock the inventory, enchant, then
// unwind everything again.
func TestInventoryLifecycle(t *testing.T) {
	suffix := time.Now().UnixNano()

	// 1. Create player
	var playerID int
	{
		resp, body := makeRequest(t, "POST", "/api/v1/players", map[string]interface{}{
			"username": fmt.Sprintf("staging_player_%d", suffix),
		})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("Create player: expected 201, got %d. Body: %s", resp.StatusCode, string(body))
		}
		var player struct {
			PlayerID int `json:"player_id"`
		}
		if err := json.Unmarshal(body, &player); err != nil {
			t.Fatalf("Failed to unmarshal player: %v", err)
		}
		playerID = player.PlayerID
	}

	// 2. Create item
	var itemID int
	{
		resp, body := makeRequest(t, "POST", "/api/v1/items", map[string]interface{}{
			"name":      fmt.Sprintf("staging sword %d", suffix),
			"item_type": "weapon",
			"rarity":    "rare",
		})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("Create item: expected 201, got %d. Body: %s", resp.StatusCode, string(body))
		}
		var item struct {
			ItemID int `json:"item_id"`
		}
		if err := json.Unmarshal(body, &item); err != nil {
			t.Fatalf("Failed to unmarshal item: %v", err)
		}
		itemID = item.ItemID
	}

	// 3. Create enchantment
	var enchantmentID int
	{
		resp, body := makeRequest(t, "POST", "/api/v1/enchantments", map[string]interface{}{
			"name":               fmt.Sprintf("staging blessing %d", suffix),
			"effect_description": "Staging smoke test effect",
		})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("Create enchantment: expected 201, got %d. Body: %s", resp.StatusCode, string(body))
		}
		var enchantment struct {
			EnchantmentID int `json:"enchantment_id"`
		}
		if err := json.Unmarshal(body, &enchantment); err != nil {
			t.Fatalf("Failed to unmarshal enchantment: %v", err)
		}
		enchantmentID = enchantment.EnchantmentID
	}

	inventoryPath := fmt.Sprintf("/api/v1/players/%d/inventory", playerID)

	// 4. Add item to inventory
	{
		resp, body := makeRequest(t, "POST", inventoryPath, map[string]interface{}{
			"item_id":  itemID,
			"quantity": 3,
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Add item: expected 200, got %d. Body: %s", resp.StatusCode, string(body))
		}
		var result struct {
			Quantity int `json:"quantity"`
		}
		if err := json.Unmarshal(body, &result); err != nil {
			t.Fatalf("Failed to unmarshal add response: %v", err)
		}
		if result.Quantity != 3 {
			t.Errorf("Expected quantity 3 after add, got %d", result.Quantity)
		}
	}

	// 5. Enchant the entry
	{
		resp, body := makeRequest(t, "POST", fmt.Sprintf("%s/%d/enchant", inventoryPath, itemID), map[string]interface{}{
			"enchantment_id": enchantmentID,
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Enchant item: expected 200, got %d. Body: %s", resp.StatusCode, string(body))
		}
		var result struct {
			Applied bool `json:"applied"`
		}
		if err := json.Unmarshal(body, &result); err != nil {
			t.Fatalf("Failed to unmarshal enchant response: %v", err)
		}
		if !result.Applied {
			t.Error("Expected enchantment to be applied")
		}
	}

	// 6. Verify inventory listing
	{
		resp, body := makeRequest(t, "GET", inventoryPath, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Get inventory: expected 200, got %d. Body: %s", resp.StatusCode, string(body))
		}
		var result struct {
			Items []struct {
				ItemID       int      `json:"item_id"`
				Quantity     int      `json:"quantity"`
				Enchantments []string `json:"enchantments"`
			} `json:"items"`
		}
		if err := json.Unmarshal(body, &result); err != nil {
			t.Fatalf("Failed to unmarshal inventory: %v", err)
		}
		if len(result.Items) != 1 {
			t.Fatalf("Expected 1 inventory entry, got %d", len(result.Items))
		}
		if result.Items[0].ItemID != itemID || result.Items[0].Quantity != 3 {
			t.Errorf("Unexpected entry: %+v", result.Items[0])
		}
		if len(result.Items[0].Enchantments) != 1 {
			t.Errorf("Expected 1 enchantment on entry, got %v", result.Items[0].Enchantments)
		}
	}

	// 7. Strip enchantments
	{
		resp, body := makeRequest(t, "DELETE", fmt.Sprintf("%s/%d/enchantments", inventoryPath, itemID), nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Remove enchantments: expected 200, got %d. Body: %s", resp.StatusCode, string(body))
		}
		var result struct {
			Removed int64 `json:"removed"`
		}
		if err := json.Unmarshal(body, &result); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if result.Removed != 1 {
			t.Errorf("Expected 1 enchantment removed, got %d", result.Removed)
		}
	}

	// 8. Remove the full stack
	{
		resp, body := makeRequest(t, "DELETE", fmt.Sprintf("%s/%d", inventoryPath, itemID), map[string]interface{}{
			"quantity": 3,
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Remove item: expected 200, got %d. Body: %s", resp.StatusCode, string(body))
		}
		var result struct {
			Remaining int `json:"remaining"`
		}
		if err := json.Unmarshal(body, &result); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if result.Remaining != 0 {
			t.Errorf("Expected 0 remaining, got %d", result.Remaining)
		}
	}

	// 9. Clean up catalog rows
	{
		resp, body := makeRequest(t, "DELETE", fmt.Sprintf("/api/v1/items/%d", itemID), nil)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Delete item: expected 200, got %d. Body: %s", resp.StatusCode, string(body))
		}
		resp, body = makeRequest(t, "DELETE", fmt.Sprintf("/api/v1/enchantments/%d", enchantmentID), nil)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Delete enchantment: expected 200, got %d. Body: %s", resp.StatusCode, string(body))
		}
	}
}

// TestCatalogEndpoints exercises the list endpoints with filters.
func TestCatalogEndpoints(t *testing.T) {
	t.Run("ListItems", func(t *testing.T) {
		resp, body := makeRequest(t, "GET", "/api/v1/items", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200, got %d. Body: %s", resp.StatusCode, string(body))
		}
		var result struct {
			Items []interface{} `json:"items"`
		}
		if err := json.Unmarshal(body, &result); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
	})

	t.Run("ListItemsFiltered", func(t *testing.T) {
		resp, body := makeRequest(t, "GET", "/api/v1/items?item_type=weapon&rarity=rare", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200, got %d. Body: %s", resp.StatusCode, string(body))
		}
	})

	t.Run("ListItemsBadFilter", func(t *testing.T) {
		resp, _ := makeRequest(t, "GET", "/api/v1/items?item_type=potion", nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected 400 for invalid filter, got %d", resp.StatusCode)
		}
	})

	t.Run("ListEnchantments", func(t *testing.T) {
		resp, body := makeRequest(t, "GET", "/api/v1/enchantments", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200, got %d. Body: %s", resp.StatusCode, string(body))
		}
	})
}
