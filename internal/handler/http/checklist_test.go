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

func TestListChecklist(t *testing.T) {
	h, m := newTestHandler(t)

	m.expectAuthorized()
	m.checklist.EXPECT().ListChecklist(gomock.Any(), testUserID).
		Return([]models.ChecklistItem{{DocumentName: "Passaporte válido", IsCompleted: true}}, nil)

	rr := serve(h, http.MethodGet, "/api/checklist", nil, true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decodeBody[[]models.ChecklistItem](t, rr)[0].IsCompleted)
}

func TestToggleChecklistItem(t *testing.T) {
	h, m := newTestHandler(t)
	toggle := models.ChecklistToggle{DocumentName: "Registo criminal", CurrentStatus: false}

	m.expectAuthorized()
	m.checklist.EXPECT().ToggleChecklistItem(gomock.Any(), testUserID, toggle).
		Return(models.ChecklistItem{DocumentName: toggle.DocumentName, IsCompleted: true}, nil)

	rr := serve(h, http.MethodPost, "/api/checklist/toggle", jsonBody(t, toggle), true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decodeBody[models.ChecklistItem](t, rr).IsCompleted)
}

func TestToggleChecklistItem_Blank(t *testing.T) {
	h, m := newTestHandler(t)

	m.expectAuthorized()
	m.checklist.EXPECT().ToggleChecklistItem(gomock.Any(), testUserID, gomock.Any()).
		Return(models.ChecklistItem{}, validators.ErrEmptyDocumentName)

	rr := serve(h, http.MethodPost, "/api/checklist/toggle", jsonBody(t, models.ChecklistToggle{}), true)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
