package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/voy/internal/store"
	"github.com/MKhiriev/voy/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListQuickAccess_Empty(t *testing.T) {
	h, m := newTestHandler(t)

	m.expectAuthorized()
	m.quickAccess.EXPECT().ListQuickAccess(gomock.Any(), testUserID).Return(nil, nil)

	rr := serve(h, http.MethodGet, "/api/quick-access", nil, true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"document_ids":[]}`, rr.Body.String())
}

func TestToggleQuickAccess(t *testing.T) {
	h, m := newTestHandler(t)

	m.expectAuthorized()
	m.quickAccess.EXPECT().ToggleQuickAccess(gomock.Any(), testUserID, testDocumentID).Return(true, nil)

	rr := serve(h, http.MethodPost, "/api/quick-access/"+testDocumentID, nil, true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, quickAccessToggleResponse{DocumentID: testDocumentID, Pinned: true}, decodeBody[quickAccessToggleResponse](t, rr))
}

func TestReplaceQuickAccess(t *testing.T) {
	h, m := newTestHandler(t)
	ids := []string{testDocumentID}

	m.expectAuthorized()
	gomock.InOrder(
		m.quickAccess.EXPECT().ReplaceQuickAccess(gomock.Any(), testUserID, ids).Return(nil),
		m.quickAccess.EXPECT().ListQuickAccess(gomock.Any(), testUserID).Return(ids, nil),
	)

	rr := serve(h, http.MethodPut, "/api/quick-access", jsonBody(t, models.QuickAccess{DocumentIDs: ids}), true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ids, decodeBody[models.QuickAccess](t, rr).DocumentIDs)
}

func TestReplaceQuickAccess_ForeignDocument(t *testing.T) {
	h, m := newTestHandler(t)

	m.expectAuthorized()
	m.quickAccess.EXPECT().ReplaceQuickAccess(gomock.Any(), testUserID, gomock.Any()).Return(store.ErrDocumentNotFound)

	rr := serve(h, http.MethodPut, "/api/quick-access", jsonBody(t, models.QuickAccess{DocumentIDs: []string{testDocumentID}}), true)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
