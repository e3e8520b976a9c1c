package controllers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCRUD(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "Ira Teach", "ira@example.com")

	resp := doRequest(t, app, "POST", "/categories", token, map[string]interface{}{
		"name":        "Programming",
		"description": "Software development courses",
	})
	require.Equal(t, 201, resp.StatusCode)
	categoryID := decodeMap(t, resp)["id"].(float64)

	resp = doRequest(t, app, "GET", fmt.Sprintf("/categories?id=%.0f", categoryID), token, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Programming", decodeMap(t, resp)["name"])

	path := fmt.Sprintf("/categories?id=%.0f", categoryID)
	resp = doRequest(t, app, "PUT", path, token, map[string]interface{}{"description": "Updated description"})
	require.Equal(t, 200, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "Programming", body["name"])
	assert.Equal(t, "Updated description", body["description"])

	resp = doRequest(t, app, "DELETE", path, token, nil)
	require.Equal(t, 200, resp.StatusCode)

	resp = doRequest(t, app, "GET", path, token, nil)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestCategoryDuplicateName(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "Ira Teach", "ira@example.com")

	resp := doRequest(t, app, "POST", "/categories", token, map[string]interface{}{"name": "Design"})
	require.Equal(t, 201, resp.StatusCode)
	resp.Body.Close()

	// Exact duplicate is rejected
	resp = doRequest(t, app, "POST", "/categories", token, map[string]interface{}{"name": "Design"})
	require.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_NAME", decodeMap(t, resp)["code"])

	// Case-sensitive matching lets a different casing through
	resp = doRequest(t, app, "POST", "/categories", token, map[string]interface{}{"name": "design"})
	assert.Equal(t, 201, resp.StatusCode)
	resp.Body.Close()

	// Renaming onto an existing name collides too
	resp = doRequest(t, app, "POST", "/categories", token, map[string]interface{}{"name": "Business"})
	businessID := decodeMap(t, resp)["id"].(float64)
	resp = doRequest(t, app, "PUT", fmt.Sprintf("/categories?id=%.0f", businessID), token,
		map[string]interface{}{"name": "Design"})
	require.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_NAME", decodeMap(t, resp)["code"])
}

func TestCategoryValidation(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "Ira Teach", "ira@example.com")

	resp := doRequest(t, app, "POST", "/categories", token, map[string]interface{}{"name": "  "})
	require.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "MISSING_REQUIRED_FIELD", decodeMap(t, resp)["code"])

	resp = doRequest(t, app, "PUT", "/categories?id=abc", token, map[string]interface{}{"name": "X"})
	require.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", decodeMap(t, resp)["code"])
}

func TestCategorySearchList(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "Ira Teach", "ira@example.com")

	for _, name := range []string{"Web Development", "Mobile Development", "Marketing"} {
		resp := doRequest(t, app, "POST", "/categories", token, map[string]interface{}{"name": name})
		require.Equal(t, 201, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doRequest(t, app, "GET", "/categories?search=Development", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Len(t, decodeList(t, resp), 2)
}
