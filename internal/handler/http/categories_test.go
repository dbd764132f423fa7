package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/voy/internal/validators"
	"github.com/MKhiriev/voy/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCategoryID = "0190b6f5-3333-7000-8000-000000000004"

func TestAddCategory(t *testing.T) {
	h, m := newTestHandler(t)

	m.expectAuthorized()
	m.categories.EXPECT().AddCategory(gomock.Any(), models.Category{UserID: testUserID, Label: "Saúde", Icon: ptr("heart")}).
		Return(models.Category{ID: testCategoryID, Label: "Saúde"}, nil)

	rr := serve(h, http.MethodPost, "/api/categories", jsonBody(t, map[string]string{"label": "Saúde", "icon": "heart"}), true)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, testCategoryID, decodeBody[models.Category](t, rr).ID)
}

func TestListCategories(t *testing.T) {
	h, m := newTestHandler(t)

	m.expectAuthorized()
	m.categories.EXPECT().ListCategories(gomock.Any(), testUserID).Return([]models.Category{{ID: testCategoryID}}, nil)

	rr := serve(h, http.MethodGet, "/api/categories", nil, true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeBody[[]models.Category](t, rr), 1)
}

func TestRenameCategory(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "renamed", wantStatus: http.StatusOK},
		{name: "blank label", err: validators.ErrEmptyLabel, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.expectAuthorized()
			m.categories.EXPECT().RenameCategory(gomock.Any(), testUserID, testCategoryID, "Trabalho").
				Return(models.Category{ID: testCategoryID, Label: "Trabalho"}, tt.err)

			rr := serve(h, http.MethodPatch, "/api/categories/"+testCategoryID, jsonBody(t, renameCategoryRequest{Label: "Trabalho"}), true)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestDeleteCategory(t *testing.T) {
	h, m := newTestHandler(t)

	m.expectAuthorized()
	m.categories.EXPECT().DeleteCategory(gomock.Any(), testUserID, testCategoryID).Return(nil)

	assert.Equal(t, http.StatusNoContent, serve(h, http.MethodDelete, "/api/categories/"+testCategoryID, nil, true).Code)
}
