package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkozyar/catalog-service/internal/auth"
)

const categoryBody = `{
	"name": "Pizza",
	"priceConfiguration": {
		"Size": {"priceType": "base", "availableOptions": ["Small", "Medium", "Large"]},
		"Crust": {"priceType": "additional", "availableOptions": ["Thin", "Thick"]}
	},
	"attributes": [
		{"name": "isHit", "widgetType": "switch", "defaultValue": "No", "availableOptions": ["Yes", "No"]}
	],
	"hasToppings": true
}`

func createCategory(t *testing.T, env *testEnv, tok string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(categoryBody))
	req.Header.Set("Content-Type", "application/json")
	authorize(req, tok)

	w := env.do(req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created.ID
}

func TestCategoryLifecycle(t *testing.T) {
	env := newTestEnv(t)
	adminToken := token(t, auth.RoleAdmin, "tenant-1")

	id := createCategory(t, env, adminToken)

	t.Run("get returns the category", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/categories/"+id, nil)
		w := env.do(req)
		require.Equal(t, http.StatusOK, w.Code)

		var got struct {
			Name        string `json:"name"`
			HasToppings bool   `json:"hasToppings"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Pizza", got.Name)
		assert.True(t, got.HasToppings)
	})

	t.Run("list is public", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		w := env.do(req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Pizza")
	})

	t.Run("update changes the name", func(t *testing.T) {
		body := strings.Replace(categoryBody, `"name": "Pizza"`, `"name": "Calzone"`, 1)
		req := httptest.NewRequest(http.MethodPut, "/categories/"+id, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		authorize(req, adminToken)

		w := env.do(req)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		req = httptest.NewRequest(http.MethodGet, "/categories/"+id, nil)
		w = env.do(req)
		assert.Contains(t, w.Body.String(), "Calzone")
	})

	t.Run("delete removes the category", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/categories/"+id, nil)
		authorize(req, adminToken)

		w := env.do(req)
		require.Equal(t, http.StatusOK, w.Code)

		req = httptest.NewRequest(http.MethodGet, "/categories/"+id, nil)
		w = env.do(req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCategoryWritesAreAdminOnly(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(categoryBody))
	req.Header.Set("Content-Type", "application/json")
	authorize(req, token(t, auth.RoleManager, "tenant-1"))

	w := env.do(req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateCategoryRejectsUnknownPriceType(t *testing.T) {
	env := newTestEnv(t)

	body := strings.Replace(categoryBody, `"priceType": "base"`, `"priceType": "surcharge"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	authorize(req, token(t, auth.RoleAdmin, "tenant-1"))

	w := env.do(req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
