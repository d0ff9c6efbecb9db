package http_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func widgetBody() map[string]any {
	return map[string]any{
		"name":        "Widget",
		"description": "A widget",
		"price":       "9.99",
		"quantity":    5,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_Create_201ConDuenoYPrecioString(t *testing.T) {
	env := buildTestApp(t)
	token := env.seedSession(t, 1)

	resp := env.doJSON(t, http.MethodPost, "/api/products", token, widgetBody())
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Widget", body["name"])
	assert.Equal(t, "9.99", body["price"], "price viaja como string decimal")
	assert.Equal(t, float64(5), body["quantity"])
	assert.Equal(t, float64(1), body["user_id"], "el dueño sale de la sesión, no del body")
	assert.NotZero(t, body["id"])
}

func TestProducts_Create_SinSesion_401(t *testing.T) {
	env := buildTestApp(t)
	resp := env.doJSON(t, http.MethodPost, "/api/products", "", widgetBody())
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProducts_Create_ValidacionFallida_400(t *testing.T) {
	env := buildTestApp(t)
	token := env.seedSession(t, 1)

	for nombre, body := range map[string]map[string]any{
		"name vacío":        {"name": "", "description": "x", "price": "1.00", "quantity": 1},
		"description vacía": {"name": "x", "description": "", "price": "1.00", "quantity": 1},
		"price negativo":    {"name": "x", "description": "y", "price": "-0.01", "quantity": 1},
		"quantity negativo": {"name": "x", "description": "y", "price": "1.00", "quantity": -1},
		"price no numérico": {"name": "x", "description": "y", "price": "gratis", "quantity": 1},
	} {
		t.Run(nombre, func(t *testing.T) {
			resp := env.doJSON(t, http.MethodPost, "/api/products", token, body)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// List + búsqueda
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_List_SoloDelUsuarioYFiltrado(t *testing.T) {
	env := buildTestApp(t)
	tokenA := env.seedSession(t, 1)
	tokenB := env.seedSession(t, 2)

	mug := map[string]any{"name": "Blue Mug", "description": "Ceramic mug", "price": "4.50", "quantity": 10}
	plate := map[string]any{"name": "Red Plate", "description": "Stoneware plate", "price": "7.00", "quantity": 4}
	resp := env.doJSON(t, http.MethodPost, "/api/products", tokenA, mug)
	resp.Body.Close()
	resp = env.doJSON(t, http.MethodPost, "/api/products", tokenA, plate)
	resp.Body.Close()
	resp = env.doJSON(t, http.MethodPost, "/api/products", tokenB, widgetBody())
	resp.Body.Close()

	// Sin filtro: solo los dos productos del usuario A.
	resp = env.doJSON(t, http.MethodGet, "/api/products", tokenA, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeList(t, resp), 2)

	// Búsqueda substring case-insensitive sobre name o description.
	resp = env.doJSON(t, http.MethodGet, "/api/products?search=MUG", tokenA, nil)
	defer resp.Body.Close()
	matched := decodeList(t, resp)
	require.Len(t, matched, 1)
	assert.Equal(t, "Blue Mug", matched[0]["name"])

	resp = env.doJSON(t, http.MethodGet, "/api/products?search=glass", tokenA, nil)
	defer resp.Body.Close()
	assert.Empty(t, decodeList(t, resp), "lista vacía es respuesta válida, no error")
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_GetByID_404SiAusente(t *testing.T) {
	env := buildTestApp(t)
	token := env.seedSession(t, 1)

	resp := env.doJSON(t, http.MethodGet, "/api/products/999", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProducts_GetByID_IdNoNumerico_400(t *testing.T) {
	env := buildTestApp(t)
	token := env.seedSession(t, 1)

	resp := env.doJSON(t, http.MethodGet, "/api/products/abc", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_Update_ParcialPreservaCampos(t *testing.T) {
	env := buildTestApp(t)
	token := env.seedSession(t, 1)

	resp := env.doJSON(t, http.MethodPost, "/api/products", token, widgetBody())
	created := decodeBody(t, resp)
	resp.Body.Close()
	id := int64(created["id"].(float64))

	resp = env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/products/%d", id), token,
		map[string]any{"quantity": 3})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(3), body["quantity"])
	assert.Equal(t, "9.99", body["price"], "price no enviado debe quedar intacto")
	assert.Equal(t, "Widget", body["name"])
}

func TestProducts_Update_DeOtroDueno_404(t *testing.T) {
	env := buildTestApp(t)
	tokenA := env.seedSession(t, 1)
	tokenB := env.seedSession(t, 2)

	resp := env.doJSON(t, http.MethodPost, "/api/products", tokenA, widgetBody())
	created := decodeBody(t, resp)
	resp.Body.Close()
	id := int64(created["id"].(float64))

	// El usuario B ve 404, igual que si el producto no existiera.
	resp = env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/products/%d", id), tokenB,
		map[string]any{"quantity": 0})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Y el producto de A queda sin tocar.
	resp = env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/products/%d", id), tokenA, nil)
	defer resp.Body.Close()
	body := decodeBody(t, resp)
	assert.Equal(t, float64(5), body["quantity"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_Delete_204LuegoSegundaVez404(t *testing.T) {
	env := buildTestApp(t)
	token := env.seedSession(t, 1)

	resp := env.doJSON(t, http.MethodPost, "/api/products", token, widgetBody())
	created := decodeBody(t, resp)
	resp.Body.Close()
	path := fmt.Sprintf("/api/products/%d", int64(created["id"].(float64)))

	resp = env.doJSON(t, http.MethodDelete, path, token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.doJSON(t, http.MethodDelete, path, token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProducts_Delete_DeOtroDueno_404YNoBorra(t *testing.T) {
	env := buildTestApp(t)
	tokenA := env.seedSession(t, 1)
	tokenB := env.seedSession(t, 2)

	resp := env.doJSON(t, http.MethodPost, "/api/products", tokenA, widgetBody())
	created := decodeBody(t, resp)
	resp.Body.Close()
	path := fmt.Sprintf("/api/products/%d", int64(created["id"].(float64)))

	resp = env.doJSON(t, http.MethodDelete, path, tokenB, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.doJSON(t, http.MethodGet, path, tokenA, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "el producto de A debe seguir existiendo")
}
