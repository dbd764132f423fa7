package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/voy/internal/catalog"
	"github.com/MKhiriev/voy/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalogService(t *testing.T) CatalogService {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return NewCatalogService(c, logger.Nop())
}

func TestCatalogService_VisaTypes(t *testing.T) {
	svc := newTestCatalogService(t)
	ctx := context.Background()

	visas := svc.ListVisaTypes(ctx)
	require.NotEmpty(t, visas)

	got, err := svc.GetVisaType(ctx, visas[0].ID)
	require.NoError(t, err)
	assert.Equal(t, visas[0], got)

	_, err = svc.GetVisaType(ctx, "visto-lunar")
	assert.ErrorIs(t, err, catalog.ErrVisaNotFound)
}

func TestCatalogService_Ask(t *testing.T) {
	svc := newTestCatalogService(t)
	ctx := context.Background()

	questions := svc.ListQuestions(ctx)
	require.NotEmpty(t, questions)

	answer, err := svc.Ask(ctx, questions[0])
	require.NoError(t, err)
	assert.NotEmpty(t, answer.Answer)
	assert.NotContains(t, answer.Suggestions, questions[0])
	assert.LessOrEqual(t, len(answer.Suggestions), catalog.MaxSuggestions)

	_, err = svc.Ask(ctx, "Qual é a capital da Lua?")
	assert.ErrorIs(t, err, catalog.ErrQuestionNotFound)
}
