package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedData(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	visas := c.VisaTypes()
	require.Len(t, visas, 5)
	ids := make([]string, 0, len(visas))
	for _, v := range visas {
		ids = append(ids, v.ID)
		assert.NotEmpty(t, v.RequiredDocuments, v.ID)
		assert.NotEmpty(t, v.Observations, v.ID)
	}
	assert.Equal(t, []string{"study", "work", "job-seeking", "residence", "schengen"}, ids)

	questions := c.Questions()
	require.Len(t, questions, 10)
	assert.Equal(t, "O que é a AIMA?", questions[0])
	assert.Equal(t, "O que é o Visto de Estudo?", questions[5])
	assert.Equal(t, "O que é o Visto Schengen (Curta Duração)?", questions[9])
}

func TestCatalog_VisaType(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	v, err := c.VisaType("schengen")
	require.NoError(t, err)
	assert.Equal(t, "Visto Schengen (Curta Duração)", v.Name)
	assert.Contains(t, v.RequiredDocuments, "Seguro de viagem (cobertura mínima €30.000)")

	_, err = c.VisaType("golden")
	assert.ErrorIs(t, err, ErrVisaNotFound)
}

func TestCatalog_VisaTypesReturnsCopy(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	visas := c.VisaTypes()
	visas[0].Name = "changed"

	v, err := c.VisaType("study")
	require.NoError(t, err)
	assert.Equal(t, "Visto de Estudo", v.Name)
}

func TestCatalog_AskVisaQuestion(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	answer, err := c.Ask("O que é o Visto de Estudo?")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(answer.Answer,
		"**Visto de Estudo**\n\nPara quem deseja estudar em Portugal por mais de 3 meses.\n\n**Para quem é indicado:**\n"))
	assert.Contains(t, answer.Answer, "**Duração:**\nValidade de 4 meses (renovável por Autorização de Residência)")
	assert.Contains(t, answer.Answer, "**Documentos normalmente solicitados:**\n• Passaporte válido (mínimo 6 meses)\n• Carta de aceitação")
	assert.Contains(t, answer.Answer, "**Observações importantes:**\n• Permite trabalho em tempo parcial (até 20h/semana)")
	assert.True(t, strings.HasSuffix(answer.Answer,
		"⚠️ **Aviso:** Esta informação é orientativa. As regras podem mudar. Consulte sempre o site oficial do consulado ou da VFS Global."))

	assert.Equal(t, []string{
		"O que é a AIMA?",
		"Como tirar o NIF?",
		"Como tirar o NISS?",
		"Como funciona o SNS?",
	}, answer.Suggestions)
}

func TestCatalog_AskExcludesAskedQuestion(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	answer, err := c.Ask("  como tirar o nif?  ")
	require.NoError(t, err)

	assert.Equal(t, "Como tirar o NIF?", answer.Question)
	assert.Contains(t, answer.Answer, "Número de Identificação Fiscal")
	assert.Equal(t, []string{
		"O que é a AIMA?",
		"Como tirar o NISS?",
		"Como funciona o SNS?",
		"Onde acompanho meu processo?",
	}, answer.Suggestions)
	assert.NotContains(t, answer.Suggestions, answer.Question)
}

func TestCatalog_AskUnknown(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	_, err = c.Ask("Quanto custa um café?")
	assert.ErrorIs(t, err, ErrQuestionNotFound)

	_, err = c.Ask("")
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestNew_SmallCatalogSuggestions(t *testing.T) {
	c, err := New([]byte("[]"), []byte(`
- question: A?
  answer: a
- question: B?
  answer: b
`))
	require.NoError(t, err)

	answer, err := c.Ask("A?")
	require.NoError(t, err)
	assert.Equal(t, "a", answer.Answer)
	assert.Equal(t, []string{"B?"}, answer.Suggestions)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		visas string
		faq   string
	}{
		{name: "broken visas yaml", visas: "- id: [", faq: "[]"},
		{name: "broken faq yaml", visas: "[]", faq: "question: {"},
		{name: "visa without id", visas: "- name: Visto", faq: "[]"},
		{name: "duplicate visa id", visas: "- {id: a, name: A}\n- {id: a, name: B}", faq: "[]"},
		{name: "empty answer", visas: "[]", faq: "- {question: A?, answer: ''}"},
		{name: "duplicate question", visas: "[]", faq: "- {question: A?, answer: a}\n- {question: a?, answer: b}"},
		{name: "faq collides with generated visa question", visas: "- {id: x, name: X}", faq: "- {question: O que é o X?, answer: a}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]byte(tt.visas), []byte(tt.faq))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}
