package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkozyar/catalog-service/internal/auth"
)

func toppingFields(tenant string) map[string]string {
	return map[string]string{
		"name":      "Mushrooms",
		"price":     "120",
		"tenantId":  tenant,
		"isPublish": "true",
	}
}

func createTopping(t *testing.T, env *testEnv, tok string, fields map[string]string) string {
	t.Helper()
	body, contentType := multipartBody(t, fields, []byte("jpeg-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/toppings", body)
	req.Header.Set("Content-Type", contentType)
	authorize(req, tok)

	w := env.do(req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created.ID
}

func TestCreateToppingPublishesEvent(t *testing.T) {
	env := newTestEnv(t)

	id := createTopping(t, env, token(t, auth.RoleManager, "tenant-1"), toppingFields("tenant-1"))

	events := env.Publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "topping", events[0].Topic)

	payload, err := json.Marshal(events[0].Payload)
	require.NoError(t, err)
	var event struct {
		ID       string  `json:"id"`
		Price    float64 `json:"price"`
		TenantID string  `json:"tenantId"`
	}
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, id, event.ID)
	assert.Equal(t, 120.0, event.Price)
	assert.Equal(t, "tenant-1", event.TenantID)
}

func TestCreateToppingRequiresImage(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t, toppingFields("tenant-1"), nil)
	req := httptest.NewRequest(http.MethodPost, "/toppings", body)
	req.Header.Set("Content-Type", contentType)
	authorize(req, token(t, auth.RoleManager, "tenant-1"))

	w := env.do(req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListToppingsFiltersByTenant(t *testing.T) {
	env := newTestEnv(t)

	createTopping(t, env, token(t, auth.RoleManager, "tenant-1"), toppingFields("tenant-1"))
	createTopping(t, env, token(t, auth.RoleManager, "tenant-2"), toppingFields("tenant-2"))

	req := httptest.NewRequest(http.MethodGet, "/toppings?tenantId=tenant-1", nil)
	w := env.do(req)
	require.Equal(t, http.StatusOK, w.Code)

	var toppings []struct {
		TenantID string `json:"tenantId"`
		Image    string `json:"image"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &toppings))
	require.Len(t, toppings, 1)
	assert.Equal(t, "tenant-1", toppings[0].TenantID)
	assert.Contains(t, toppings[0].Image, "https://cdn.test/")
}

func TestUpdateToppingOtherTenantForbidden(t *testing.T) {
	env := newTestEnv(t)

	id := createTopping(t, env, token(t, auth.RoleManager, "tenant-1"), toppingFields("tenant-1"))

	body, contentType := multipartBody(t, toppingFields("tenant-1"), nil)
	req := httptest.NewRequest(http.MethodPut, "/toppings/"+id, body)
	req.Header.Set("Content-Type", contentType)
	authorize(req, token(t, auth.RoleManager, "tenant-2"))

	w := env.do(req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
