package models

// VisaType describes a Portuguese visa and what it requires.
type VisaType struct {
	ID                string   `json:"id" yaml:"id"`
	Name              string   `json:"name" yaml:"name"`
	ShortDescription  string   `json:"short_description" yaml:"short_description"`
	ForWho            string   `json:"for_who" yaml:"for_who"`
	Duration          string   `json:"duration" yaml:"duration"`
	RequiredDocuments []string `json:"required_documents" yaml:"required_documents"`
	Observations      []string `json:"observations" yaml:"observations"`
}

// FAQEntry is a scripted question with its answer.
type FAQEntry struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// AssistantQuestion is the body of the assistant endpoint.
type AssistantQuestion struct {
	Question string `json:"question"`
}

// AssistantAnswer is the assistant's reply: the answer plus a few other
// questions the user may want to ask next.
type AssistantAnswer struct {
	Question    string   `json:"question"`
	Answer      string   `json:"answer"`
	Suggestions []string `json:"suggestions"`
}
