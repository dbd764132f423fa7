package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/voy/internal/catalog"
	"github.com/MKhiriev/voy/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListVisaTypes_Public(t *testing.T) {
	h, m := newTestHandler(t)

	m.catalog.EXPECT().ListVisaTypes(gomock.Any()).Return([]models.VisaType{{ID: "d7", Name: "Visto D7"}})

	rr := serve(h, http.MethodGet, "/api/visas", nil, false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Visto D7", decodeBody[[]models.VisaType](t, rr)[0].Name)
}

func TestGetVisaType(t *testing.T) {
	h, m := newTestHandler(t)

	m.catalog.EXPECT().GetVisaType(gomock.Any(), "d7").Return(models.VisaType{ID: "d7"}, nil)
	m.catalog.EXPECT().GetVisaType(gomock.Any(), "h1b").Return(models.VisaType{}, catalog.ErrVisaNotFound)

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/api/visas/d7", nil, false).Code)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/api/visas/h1b", nil, false).Code)
}

func TestListQuestions(t *testing.T) {
	h, m := newTestHandler(t)

	m.catalog.EXPECT().ListQuestions(gomock.Any()).Return([]string{"O que é o Visto D7?"})

	rr := serve(h, http.MethodGet, "/api/assistant/questions", nil, false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"O que é o Visto D7?"}, decodeBody[questionsResponse](t, rr).Questions)
}

func TestAsk(t *testing.T) {
	h, m := newTestHandler(t)
	answer := models.AssistantAnswer{Question: "O que é o NIF?", Answer: "É o número fiscal.", Suggestions: []string{"O que é o NISS?"}}

	m.catalog.EXPECT().Ask(gomock.Any(), "O que é o NIF?").Return(answer, nil)
	m.catalog.EXPECT().Ask(gomock.Any(), "Quem ganhou o jogo?").Return(models.AssistantAnswer{}, catalog.ErrQuestionNotFound)

	rr := serve(h, http.MethodPost, "/api/assistant/ask", jsonBody(t, models.AssistantQuestion{Question: "O que é o NIF?"}), false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, answer, decodeBody[models.AssistantAnswer](t, rr))

	rr = serve(h, http.MethodPost, "/api/assistant/ask", jsonBody(t, models.AssistantQuestion{Question: "Quem ganhou o jogo?"}), false)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
