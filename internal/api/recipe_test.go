package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipekit/internal/samples"
	"github.com/pageza/recipekit/internal/service"
	"github.com/pageza/recipekit/internal/template"
)

func workbookBytes(t *testing.T) []byte {
	var buf bytes.Buffer
	require.NoError(t, template.WriteWorkbook(&buf, samples.Workbook()))
	return buf.Bytes()
}

func TestImportWorkbook(t *testing.T) {
	env := setupTestRouter(t)
	userID, token := env.tokenFor(t)

	w := env.upload(t, "recipe_import_template.xlsx", workbookBytes(t), token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[ImportResponse](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Successfully imported 5 recipes", resp.Message)
	assert.Equal(t, 5, resp.ImportedCount)
	assert.Empty(t, resp.Errors)
	assert.NotContains(t, w.Body.String(), `"errors"`)

	stored, err := env.recipes.ListRecipes(context.Background(), service.ListFilter{UserID: &userID})
	require.NoError(t, err)
	assert.Len(t, stored, 5)
}

func TestImportCSV(t *testing.T) {
	env := setupTestRouter(t)
	_, token := env.tokenFor(t)

	var buf bytes.Buffer
	require.NoError(t, template.WriteCSV(&buf, samples.CSV()))

	w := env.upload(t, "recipes.csv", buf.Bytes(), token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 10, decode[ImportResponse](t, w).ImportedCount)
}

func TestImportRejectsRequests(t *testing.T) {
	env := setupTestRouter(t)
	_, token := env.tokenFor(t)

	tests := []struct {
		name     string
		filename string
		data     string
		token    string
		code     int
		err      string
	}{
		{"no token", "recipes.csv", "", "", http.StatusUnauthorized, "missing authorization header"},
		{"no file", "", "", token, http.StatusBadRequest, "No file provided"},
		{"wrong type", "recipes.xls", "x", token, http.StatusBadRequest, "Invalid file type. Please upload an Excel (.xlsx) or CSV file"},
		{"corrupt workbook", "recipes.xlsx", "not a zip", token, http.StatusBadRequest, "Could not read the uploaded file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.upload(t, tt.filename, []byte(tt.data), tt.token)
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.err, decode[map[string]string](t, w)["error"])
		})
	}
}

func TestImportReportsRowErrors(t *testing.T) {
	env := setupTestRouter(t)
	userID, token := env.tokenFor(t)

	csv := strings.Join([]string{
		strings.Join(template.Headers, ","),
		"Kheer,Dessert,Indian,,,4,\"Rice,150,g\"",
		",Dessert,Indian,,,,",
		"Lassi,Beverage,Punjabi,,,2,\"Yogurt,lots,ml\"",
	}, "\n")

	w := env.upload(t, "recipes.csv", []byte(csv), token)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[ValidationErrorResponse](t, w)
	assert.Equal(t, "Validation errors found", resp.Error)
	assert.Equal(t, []string{
		"Row 3: Recipe name is required",
		"Row 4: Invalid ingredients format",
	}, resp.Details)

	stored, err := env.recipes.ListRecipes(context.Background(), service.ListFilter{UserID: &userID})
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestListGetAndDeleteRecipes(t *testing.T) {
	env := setupTestRouter(t)
	ownerID, owner := env.tokenFor(t)
	_, stranger := env.tokenFor(t)

	imported, failures := env.recipes.ImportRecipes(context.Background(), ownerID, samples.Workbook())
	require.Empty(t, failures)

	w := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/recipes?category=Main%20Course", nil), "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[map[string][]RecipeResponse](t, w)["recipes"]
	require.Len(t, list, 2)
	for _, r := range list {
		assert.Equal(t, "Main Course", r.Category)
	}

	w = env.do(httptest.NewRequest(http.MethodGet, "/api/v1/recipes?q=lentils", nil), "")
	list = decode[map[string][]RecipeResponse](t, w)["recipes"]
	require.Len(t, list, 1)
	assert.Equal(t, "Dal Makhani", list[0].Name)

	w = env.do(httptest.NewRequest(http.MethodGet, "/api/v1/recipes?user_id=nope", nil), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	id := imported[0].ID.String()
	w = env.do(httptest.NewRequest(http.MethodGet, "/api/v1/recipes/"+id, nil), "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[map[string]RecipeResponse](t, w)["recipe"]
	assert.Equal(t, "Chicken Curry", got.Name)
	assert.Len(t, got.Ingredients, 5)
	assert.InDelta(t, imported[0].Cost(), got.TotalCost, 1e-9)

	w = env.do(httptest.NewRequest(http.MethodGet, "/api/v1/recipes/not-a-uuid", nil), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(httptest.NewRequest(http.MethodGet, "/api/v1/recipes/"+uuid.NewString(), nil), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(httptest.NewRequest(http.MethodDelete, "/api/v1/recipes/"+id, nil), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(httptest.NewRequest(http.MethodDelete, "/api/v1/recipes/"+id, nil), stranger)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(httptest.NewRequest(http.MethodDelete, "/api/v1/recipes/"+id, nil), owner)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(httptest.NewRequest(http.MethodGet, "/api/v1/recipes/"+id, nil), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
