package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/voy/models"
)

// psql renders squirrel builders with Postgres $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{"user_id", "email", "password_hash", "created_at"}

	profileColumns = []string{
		"id", "user_id", "language", "user_profile", "display_name",
		"nif", "niss", "sns", "passport",
		"notifications_enabled", "biometric_enabled", "theme",
		"created_at", "updated_at",
	}

	documentColumns = []string{
		"id", "user_id", "name", "category", "file_url", "file_type", "object_key",
		"created_at", "updated_at",
	}

	noteColumns = []string{
		"id", "user_id", "title", "content", "category", "is_important",
		"reminder_date", "reminded_at", "created_at", "updated_at",
	}

	categoryColumns = []string{"id", "user_id", "label", "icon", "color", "created_at", "updated_at"}

	checklistColumns = []string{"id", "user_id", "document_name", "is_completed", "created_at", "updated_at"}

	aimaColumns = []string{
		"id", "user_id", "process_type", "completed_steps", "important_dates", "protocols", "notes",
		"created_at", "updated_at",
	}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// users

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("user_id", "email", "password_hash").
		Values(user.UserID, user.Email, user.PasswordHash).
		Suffix("RETURNING created_at").
		ToSql()
}

func buildCreateProfileQuery(profileID string, user models.User) (string, []any, error) {
	var displayName *string
	if user.DisplayName != "" {
		displayName = &user.DisplayName
	}

	return psql.Insert("profiles").
		Columns("id", "user_id", "language", "theme", "display_name").
		Values(profileID, user.UserID, models.LanguagePortuguese, models.ThemeLight, displayName).
		ToSql()
}

func buildFindUserQuery(column, value string) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(sq.Eq{column: value}).
		ToSql()
}

func buildUpdatePasswordHashQuery(userID, passwordHash string) (string, []any, error) {
	return psql.Update("users").
		Set("password_hash", passwordHash).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// profiles

func buildGetProfileQuery(userID string) (string, []any, error) {
	return psql.Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpdateProfileQuery(update models.ProfileUpdate) (string, []any, error) {
	q := psql.Update("profiles").Set("updated_at", sq.Expr("NOW()"))

	if update.Language != nil {
		q = q.Set("language", *update.Language)
	}
	if update.UserProfile != nil {
		q = q.Set("user_profile", *update.UserProfile)
	}
	if update.DisplayName != nil {
		q = q.Set("display_name", nullIfEmpty(*update.DisplayName))
	}
	for _, name := range models.ProtectedNumbers {
		if value := *update.Number(name); value != nil {
			q = q.Set(string(name), nullIfEmpty(*value))
		}
	}
	if update.NotificationsEnabled != nil {
		q = q.Set("notifications_enabled", *update.NotificationsEnabled)
	}
	if update.BiometricEnabled != nil {
		q = q.Set("biometric_enabled", *update.BiometricEnabled)
	}
	if update.Theme != nil {
		q = q.Set("theme", *update.Theme)
	}

	return q.Where(sq.Eq{"user_id": update.UserID}).
		Suffix(returning(profileColumns)).
		ToSql()
}

// documents

func buildListDocumentsQuery(userID string) (string, []any, error) {
	return psql.Select(documentColumns...).
		From("documents").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
}

func buildGetDocumentQuery(userID, documentID string) (string, []any, error) {
	return psql.Select(documentColumns...).
		From("documents").
		Where(sq.Eq{"id": documentID, "user_id": userID}).
		ToSql()
}

func buildCreateDocumentQuery(document models.Document) (string, []any, error) {
	return psql.Insert("documents").
		Columns("id", "user_id", "name", "category", "file_url", "file_type", "object_key").
		Values(document.ID, document.UserID, document.Name, document.Category,
			document.FileURL, document.FileType, document.ObjectKey).
		Suffix(returning(documentColumns)).
		ToSql()
}

func buildUpdateDocumentQuery(update models.DocumentUpdate) (string, []any, error) {
	q := psql.Update("documents").Set("updated_at", sq.Expr("NOW()"))

	if update.Name != nil {
		q = q.Set("name", *update.Name)
	}
	if update.Category != nil {
		q = q.Set("category", *update.Category)
	}

	return q.Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix(returning(documentColumns)).
		ToSql()
}

func buildDeleteDocumentQuery(userID, documentID string) (string, []any, error) {
	return psql.Delete("documents").
		Where(sq.Eq{"id": documentID, "user_id": userID}).
		Suffix(returning(documentColumns)).
		ToSql()
}

func buildCountOwnedDocumentsQuery(userID string, ids []string) (string, []any, error) {
	return psql.Select("COUNT(DISTINCT id)").
		From("documents").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"id": ids}).
		ToSql()
}

// notes

func buildListNotesQuery(userID string) (string, []any, error) {
	return psql.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("is_important DESC", "created_at DESC").
		ToSql()
}

func buildGetNoteQuery(userID, noteID string) (string, []any, error) {
	return psql.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
}

func buildCreateNoteQuery(note models.Note) (string, []any, error) {
	return psql.Insert("notes").
		Columns("id", "user_id", "title", "content", "category", "is_important", "reminder_date").
		Values(note.ID, note.UserID, note.Title, note.Content, note.Category, note.IsImportant, note.ReminderDate).
		Suffix(returning(noteColumns)).
		ToSql()
}

func buildUpdateNoteQuery(update models.NoteUpdate) (string, []any, error) {
	q := psql.Update("notes").Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		q = q.Set("title", *update.Title)
	}
	if update.Content != nil {
		q = q.Set("content", nullIfEmpty(*update.Content))
	}
	if update.Category != nil {
		q = q.Set("category", nullIfEmpty(*update.Category))
	}
	if update.IsImportant != nil {
		q = q.Set("is_important", *update.IsImportant)
	}
	if update.ReminderDate != nil {
		// a new reminder date re-arms the reminder
		q = q.Set("reminder_date", *update.ReminderDate).Set("reminded_at", nil)
	}

	return q.Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix(returning(noteColumns)).
		ToSql()
}

func buildToggleNoteImportantQuery(userID, noteID string) (string, []any, error) {
	return psql.Update("notes").
		Set("is_important", sq.Expr("NOT is_important")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		Suffix(returning(noteColumns)).
		ToSql()
}

func buildDeleteNoteQuery(userID, noteID string) (string, []any, error) {
	return psql.Delete("notes").
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
}

func buildClaimDueRemindersQuery(now time.Time, limit uint64) (string, []any, error) {
	return psql.Update("notes").
		Set("reminded_at", now).
		Where(sq.Expr(`id IN (
			SELECT id FROM notes
			WHERE reminded_at IS NULL AND reminder_date IS NOT NULL AND reminder_date <= ?
			ORDER BY reminder_date
			LIMIT ?
			FOR UPDATE SKIP LOCKED)`, now, limit)).
		Suffix(returning(noteColumns)).
		ToSql()
}

// custom categories

func buildListCategoriesQuery(userID string) (string, []any, error) {
	return psql.Select(categoryColumns...).
		From("custom_categories").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
}

func buildCreateCategoryQuery(category models.Category) (string, []any, error) {
	return psql.Insert("custom_categories").
		Columns("id", "user_id", "label", "icon", "color").
		Values(category.ID, category.UserID, category.Label, category.Icon, category.Color).
		Suffix(returning(categoryColumns)).
		ToSql()
}

func buildRenameCategoryQuery(userID, categoryID, label string) (string, []any, error) {
	return psql.Update("custom_categories").
		Set("label", label).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": categoryID, "user_id": userID}).
		Suffix(returning(categoryColumns)).
		ToSql()
}

func buildDeleteCategoryQuery(userID, categoryID string) (string, []any, error) {
	return psql.Delete("custom_categories").
		Where(sq.Eq{"id": categoryID, "user_id": userID}).
		ToSql()
}

// quick access

func buildListQuickAccessQuery(userID string) (string, []any, error) {
	return psql.Select("document_id").
		From("quick_access_documents").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
}

func buildDeleteQuickAccessQuery(userID string, documentIDs ...string) (string, []any, error) {
	q := psql.Delete("quick_access_documents").Where(sq.Eq{"user_id": userID})
	if len(documentIDs) > 0 {
		q = q.Where(sq.Eq{"document_id": documentIDs})
	}
	return q.ToSql()
}

func buildInsertQuickAccessQuery(userID string, documentIDs ...string) (string, []any, error) {
	q := psql.Insert("quick_access_documents").Columns("user_id", "document_id")
	for _, id := range documentIDs {
		q = q.Values(userID, id)
	}
	return q.Suffix("ON CONFLICT (user_id, document_id) DO NOTHING").ToSql()
}

// checklist

func buildListChecklistQuery(userID string) (string, []any, error) {
	return psql.Select(checklistColumns...).
		From("user_documents").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("document_name ASC").
		ToSql()
}

func buildUpsertChecklistItemQuery(item models.ChecklistItem) (string, []any, error) {
	return psql.Insert("user_documents").
		Columns("id", "user_id", "document_name", "is_completed").
		Values(item.ID, item.UserID, item.DocumentName, item.IsCompleted).
		Suffix(`ON CONFLICT (user_id, document_name)
			DO UPDATE SET is_completed = EXCLUDED.is_completed, updated_at = NOW() ` + returning(checklistColumns)).
		ToSql()
}

// aima processes

func buildGetAimaProcessQuery(userID string) (string, []any, error) {
	return psql.Select(aimaColumns...).
		From("aima_processes").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpsertAimaProcessQuery(process models.AimaProcess) (string, []any, error) {
	steps, err := encodeJSONB(process.CompletedSteps)
	if err != nil {
		return "", nil, err
	}
	dates, err := encodeJSONB(process.ImportantDates)
	if err != nil {
		return "", nil, err
	}
	protocols, err := encodeJSONB(process.Protocols)
	if err != nil {
		return "", nil, err
	}

	return psql.Insert("aima_processes").
		Columns("id", "user_id", "process_type", "completed_steps", "important_dates", "protocols", "notes").
		Values(process.ID, process.UserID, process.ProcessType, steps, dates, protocols, process.Notes).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			process_type = EXCLUDED.process_type,
			completed_steps = EXCLUDED.completed_steps,
			important_dates = EXCLUDED.important_dates,
			protocols = EXCLUDED.protocols,
			notes = EXCLUDED.notes,
			updated_at = NOW() ` + returning(aimaColumns)).
		ToSql()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
