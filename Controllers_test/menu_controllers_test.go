package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type menuJSON struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Category   string  `json:"category"`
	Available  bool    `json:"available"`
	PriceLabel string  `json:"price_label"`
}

func TestGetAllMenus(t *testing.T) {
	s := setupServer(t)

	w := s.do(t, http.MethodGet, "/menus", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var menus []menuJSON
	decode(t, w, &menus)
	assert.Len(t, menus, 4)
	assert.Equal(t, "$12.99", menus[0].PriceLabel)

	w = s.do(t, http.MethodGet, "/menus?category=drinks&lang=de", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	menus = nil
	decode(t, w, &menus)
	require.Len(t, menus, 1)
	assert.Equal(t, "Cappuccino", menus[0].Name)
	assert.Equal(t, "4,99 €", menus[0].PriceLabel)
}

func TestMenuCRUD(t *testing.T) {
	s := setupServer(t)
	token := s.login(t)

	w := s.do(t, http.MethodPost, "/admin/menus", token, map[string]interface{}{
		"name": "Lemonade", "price": 3.5, "category": "drinks",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created menuJSON
	decode(t, w, &created)
	assert.True(t, created.Available)

	w = s.do(t, http.MethodPost, "/admin/menus", token, map[string]interface{}{
		"name": "Soup", "price": 3.5, "category": "soups",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPost, "/admin/menus", token, map[string]interface{}{
		"name": "Soup", "price": -3, "category": "food",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPut, "/admin/menus/"+created.ID, token, map[string]interface{}{"available": false})
	require.Equal(t, http.StatusOK, w.Code)
	var updated menuJSON
	decode(t, w, &updated)
	assert.False(t, updated.Available)
	assert.Equal(t, "Lemonade", updated.Name)

	w = s.do(t, http.MethodDelete, "/admin/menus/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodGet, "/menus/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryEndpoints(t *testing.T) {
	s := setupServer(t)
	token := s.login(t)

	w := s.do(t, http.MethodPost, "/admin/categories", token, map[string]string{"name": "Pizza", "icon": "Pizza"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/admin/categories", token, map[string]string{"name": "Soup", "icon": "Bowl"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodDelete, "/admin/categories/food", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var deleted struct {
		OrphanedItems int `json:"orphaned_items"`
	}
	decode(t, w, &deleted)
	assert.Equal(t, 2, deleted.OrphanedItems)

	w = s.do(t, http.MethodGet, "/menus", "", nil)
	var menus []menuJSON
	decode(t, w, &menus)
	assert.Len(t, menus, 4)

	w = s.do(t, http.MethodGet, "/categories", "", nil)
	var listed struct {
		Categories []struct {
			ID   string `json:"id"`
			Icon string `json:"icon"`
		} `json:"categories"`
		Icons []string `json:"icons"`
	}
	decode(t, w, &listed)
	assert.Len(t, listed.Categories, 3)
	assert.Equal(t, []string{"Utensils", "Coffee", "IceCream", "Pizza", "Sandwich"}, listed.Icons)
}
