package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/internal/mock"
	"github.com/MKhiriev/voy/internal/validators"
	"github.com/MKhiriev/voy/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestToggleChecklistItem_StoresOppositeState(t *testing.T) {
	tests := []struct {
		name    string
		current bool
		want    bool
	}{
		{name: "mark completed", current: false, want: true},
		{name: "mark pending", current: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			checklist := mock.NewMockChecklistRepository(ctrl)
			ids := mock.NewMockIDGenerator(ctrl)
			svc := NewChecklistService(checklist, validators.NewDomainValidator(), ids, logger.Nop())

			ids.EXPECT().Generate().Return("item-id")
			checklist.EXPECT().SetChecklistItem(gomock.Any(), models.ChecklistItem{
				ID:           "item-id",
				UserID:       testUserID,
				DocumentName: "Passaporte válido",
				IsCompleted:  tt.want,
			}).Return(models.ChecklistItem{DocumentName: "Passaporte válido", IsCompleted: tt.want}, nil)

			got, err := svc.ToggleChecklistItem(context.Background(), testUserID, models.ChecklistToggle{
				DocumentName:  "Passaporte válido ",
				CurrentStatus: tt.current,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.IsCompleted)
		})
	}
}

func TestToggleChecklistItem_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewChecklistService(mock.NewMockChecklistRepository(ctrl), validators.NewDomainValidator(), mock.NewMockIDGenerator(ctrl), logger.Nop())

	_, err := svc.ToggleChecklistItem(context.Background(), testUserID, models.ChecklistToggle{})

	assert.ErrorIs(t, err, validators.ErrEmptyDocumentName)
}

func TestListChecklist(t *testing.T) {
	ctrl := gomock.NewController(t)
	checklist := mock.NewMockChecklistRepository(ctrl)
	svc := NewChecklistService(checklist, validators.NewDomainValidator(), mock.NewMockIDGenerator(ctrl), logger.Nop())

	checklist.EXPECT().ListChecklist(gomock.Any(), testUserID).Return([]models.ChecklistItem{{DocumentName: "NIF"}}, nil)

	items, err := svc.ListChecklist(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Len(t, items, 1)
}
