package store

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/voy/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.Language, &p.UserProfile, &p.DisplayName,
		&p.NIF, &p.NISS, &p.SNS, &p.Passport,
		&p.NotificationsEnabled, &p.BiometricEnabled, &p.Theme,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func scanDocument(row rowScanner) (models.Document, error) {
	var d models.Document
	err := row.Scan(
		&d.ID, &d.UserID, &d.Name, &d.Category, &d.FileURL, &d.FileType, &d.ObjectKey,
		&d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

func scanNote(row rowScanner) (models.Note, error) {
	var n models.Note
	err := row.Scan(
		&n.ID, &n.UserID, &n.Title, &n.Content, &n.Category, &n.IsImportant,
		&n.ReminderDate, &n.RemindedAt, &n.CreatedAt, &n.UpdatedAt,
	)
	return n, err
}

func scanCategory(row rowScanner) (models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.UserID, &c.Label, &c.Icon, &c.Color, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func scanChecklistItem(row rowScanner) (models.ChecklistItem, error) {
	var i models.ChecklistItem
	err := row.Scan(&i.ID, &i.UserID, &i.DocumentName, &i.IsCompleted, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

func scanAimaProcess(row rowScanner) (models.AimaProcess, error) {
	var (
		p                       models.AimaProcess
		steps, dates, protocols []byte
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.ProcessType, &steps, &dates, &protocols, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return models.AimaProcess{}, err
	}

	if p.CompletedSteps, err = decodeStrings(steps); err != nil {
		return models.AimaProcess{}, err
	}
	if p.Protocols, err = decodeStrings(protocols); err != nil {
		return models.AimaProcess{}, err
	}
	if p.ImportantDates, err = decodeImportantDates(dates); err != nil {
		return models.AimaProcess{}, err
	}
	p.Step = models.CalculateStep(p.CompletedSteps)

	return p, nil
}

// encodeJSONB renders a list column. A nil slice is stored as an empty array.
func encodeJSONB[T any](items []T) (string, error) {
	if items == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}
	return string(raw), nil
}

func decodeStrings(raw []byte) ([]string, error) {
	out := make([]string, 0)
	if len(raw) == 0 || string(raw) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}
	return out, nil
}

// decodeImportantDates drops entries that are not objects or lack a label or
// a date, which older clients could write.
func decodeImportantDates(raw []byte) ([]models.ImportantDate, error) {
	out := make([]models.ImportantDate, 0)
	if len(raw) == 0 || string(raw) == "null" {
		return out, nil
	}

	var entries []any
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	for _, entry := range entries {
		e, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		label, _ := e["label"].(string)
		date, _ := e["date"].(string)
		if label == "" || date == "" {
			continue
		}
		out = append(out, models.ImportantDate{Label: label, Date: date})
	}
	return out, nil
}
