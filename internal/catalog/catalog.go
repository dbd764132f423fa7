// Package catalog serves the static visa reference data and the scripted
// FAQ behind the assistant. The data ships embedded in the binary.
package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/MKhiriev/voy/models"
	"gopkg.in/yaml.v3"
)

// MaxSuggestions caps the follow-up questions returned with an answer.
const MaxSuggestions = 4

//go:embed data/visas.yaml data/faq.yaml data/visa_answer.tmpl
var data embed.FS

var visaAnswerTemplate = template.Must(
	template.New("visa_answer.tmpl").
		Funcs(template.FuncMap{"bullets": bullets}).
		ParseFS(data, "data/visa_answer.tmpl"),
)

// Catalog is an immutable, in-memory view of the embedded data.
// It is safe for concurrent use.
type Catalog struct {
	visas     []models.VisaType
	faq       []models.FAQEntry
	questions map[string]int
}

// Load parses the catalog embedded in the binary.
func Load() (*Catalog, error) {
	visas, err := data.ReadFile("data/visas.yaml")
	if err != nil {
		return nil, fmt.Errorf("read visas: %w", err)
	}
	faq, err := data.ReadFile("data/faq.yaml")
	if err != nil {
		return nil, fmt.Errorf("read faq: %w", err)
	}

	return New(visas, faq)
}

// New builds a catalog from YAML documents: a list of visa types and a list
// of general FAQ entries. The FAQ served by Ask is the general entries
// followed by one generated entry per visa type.
func New(visasYAML, faqYAML []byte) (*Catalog, error) {
	var visas []models.VisaType
	if err := yaml.Unmarshal(visasYAML, &visas); err != nil {
		return nil, fmt.Errorf("%w: visas: %w", ErrInvalidCatalog, err)
	}

	var general []models.FAQEntry
	if err := yaml.Unmarshal(faqYAML, &general); err != nil {
		return nil, fmt.Errorf("%w: faq: %w", ErrInvalidCatalog, err)
	}

	c := &Catalog{
		visas:     make([]models.VisaType, 0, len(visas)),
		faq:       make([]models.FAQEntry, 0, len(general)+len(visas)),
		questions: make(map[string]int, len(general)+len(visas)),
	}

	seenVisa := make(map[string]struct{}, len(visas))
	for i, v := range visas {
		if v.ID == "" || v.Name == "" {
			return nil, fmt.Errorf("%w: visa #%d has no id or name", ErrInvalidCatalog, i)
		}
		if _, ok := seenVisa[v.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate visa id %q", ErrInvalidCatalog, v.ID)
		}
		seenVisa[v.ID] = struct{}{}
		c.visas = append(c.visas, v)
	}

	for _, entry := range general {
		if err := c.addEntry(entry); err != nil {
			return nil, err
		}
	}
	for _, v := range c.visas {
		entry, err := visaFAQ(v)
		if err != nil {
			return nil, err
		}
		if err = c.addEntry(entry); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Catalog) addEntry(entry models.FAQEntry) error {
	key := normalizeQuestion(entry.Question)
	if key == "" || strings.TrimSpace(entry.Answer) == "" {
		return fmt.Errorf("%w: faq entry #%d is incomplete", ErrInvalidCatalog, len(c.faq))
	}
	if _, ok := c.questions[key]; ok {
		return fmt.Errorf("%w: duplicate question %q", ErrInvalidCatalog, entry.Question)
	}

	c.questions[key] = len(c.faq)
	c.faq = append(c.faq, entry)
	return nil
}

// VisaTypes returns every visa type in catalog order.
func (c *Catalog) VisaTypes() []models.VisaType {
	out := make([]models.VisaType, len(c.visas))
	copy(out, c.visas)
	return out
}

// VisaType looks a visa type up by id.
func (c *Catalog) VisaType(id string) (models.VisaType, error) {
	for _, v := range c.visas {
		if v.ID == id {
			return v, nil
		}
	}
	return models.VisaType{}, fmt.Errorf("%w: %q", ErrVisaNotFound, id)
}

// Questions lists every question the assistant can answer, general ones first.
func (c *Catalog) Questions() []string {
	out := make([]string, len(c.faq))
	for i, entry := range c.faq {
		out[i] = entry.Question
	}
	return out
}

// Ask answers one of the known questions and suggests up to MaxSuggestions
// others, in catalog order, never repeating the asked one.
// Matching ignores surrounding whitespace and letter case.
func (c *Catalog) Ask(question string) (models.AssistantAnswer, error) {
	idx, ok := c.questions[normalizeQuestion(question)]
	if !ok {
		return models.AssistantAnswer{}, ErrQuestionNotFound
	}

	entry := c.faq[idx]
	suggestions := make([]string, 0, MaxSuggestions)
	for i, other := range c.faq {
		if len(suggestions) == MaxSuggestions {
			break
		}
		if i == idx {
			continue
		}
		suggestions = append(suggestions, other.Question)
	}

	return models.AssistantAnswer{
		Question:    entry.Question,
		Answer:      entry.Answer,
		Suggestions: suggestions,
	}, nil
}

func visaFAQ(v models.VisaType) (models.FAQEntry, error) {
	var buf bytes.Buffer
	if err := visaAnswerTemplate.Execute(&buf, v); err != nil {
		return models.FAQEntry{}, fmt.Errorf("render answer for visa %q: %w", v.ID, err)
	}

	return models.FAQEntry{
		Question: fmt.Sprintf("O que é o %s?", v.Name),
		Answer:   strings.TrimRight(buf.String(), "\n"),
	}, nil
}

func bullets(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}

func normalizeQuestion(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}
