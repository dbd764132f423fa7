package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/voy/internal/crypto"
	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/internal/mock"
	"github.com/MKhiriev/voy/internal/store"
	"github.com/MKhiriev/voy/internal/validators"
	"github.com/MKhiriev/voy/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testProcessID = "0190b6f8-0000-7000-8000-000000000004"

type aimaMocks struct {
	processes *mock.MockAimaRepository
	cipher    *mock.MockCipher
	ids       *mock.MockIDGenerator
}

func newTestAimaService(t *testing.T) (AimaService, aimaMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := aimaMocks{
		processes: mock.NewMockAimaRepository(ctrl),
		cipher:    mock.NewMockCipher(ctrl),
		ids:       mock.NewMockIDGenerator(ctrl),
	}
	return NewAimaService(m.processes, m.cipher, validators.NewDomainValidator(), m.ids, logger.Nop()), m
}

// echoSave returns the saved process as the store would, with the step derived.
func echoSave(_ context.Context, process models.AimaProcess) (models.AimaProcess, error) {
	process.Step = models.CalculateStep(process.CompletedSteps)
	return process, nil
}

func storedProcess() models.AimaProcess {
	return models.AimaProcess{
		ID:             testProcessID,
		UserID:         testUserID,
		ProcessType:    ptr("residencia"),
		CompletedSteps: []string{"agendamento"},
		ImportantDates: []models.ImportantDate{{Label: "Entrevista", Date: "2026-03-15"}},
		Protocols:      []string{"sealed-1"},
	}
}

func TestGetProcess_Absent(t *testing.T) {
	svc, m := newTestAimaService(t)

	m.processes.EXPECT().GetAimaProcess(gomock.Any(), testUserID).Return(models.AimaProcess{}, store.ErrAimaProcessNotFound)

	got, err := svc.GetProcess(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetProcess_DecryptsProtocols(t *testing.T) {
	svc, m := newTestAimaService(t)

	m.processes.EXPECT().GetAimaProcess(gomock.Any(), testUserID).Return(storedProcess(), nil)
	m.cipher.EXPECT().Decrypt(gomock.Any(), "sealed-1", testUserID).Return("AIMA-001")

	got, err := svc.GetProcess(context.Background(), testUserID)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"AIMA-001"}, got.Protocols)
}

func TestUpdateProcess_CreatesOnFirstWrite(t *testing.T) {
	svc, m := newTestAimaService(t)

	m.processes.EXPECT().GetAimaProcess(gomock.Any(), testUserID).Return(models.AimaProcess{}, store.ErrAimaProcessNotFound)
	m.ids.EXPECT().Generate().Return(testProcessID)
	m.cipher.EXPECT().Encrypt(gomock.Any(), "AIMA-001", testUserID).Return("sealed-1", nil)
	m.processes.EXPECT().SaveAimaProcess(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, process models.AimaProcess) (models.AimaProcess, error) {
			assert.Equal(t, testProcessID, process.ID)
			assert.Equal(t, "residencia", *process.ProcessType)
			assert.Equal(t, []string{"sealed-1"}, process.Protocols)
			assert.Empty(t, process.CompletedSteps)
			return echoSave(ctx, process)
		})
	m.cipher.EXPECT().Decrypt(gomock.Any(), "sealed-1", testUserID).Return("AIMA-001")

	got, err := svc.UpdateProcess(context.Background(), models.AimaProcessUpdate{
		UserID:      testUserID,
		ProcessType: ptr("residencia"),
		Protocols:   &[]string{"AIMA-001"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"AIMA-001"}, got.Protocols)
	assert.Equal(t, 1, got.Step)
}

func TestUpdateProcess_EmptyTypeClearsIt(t *testing.T) {
	svc, m := newTestAimaService(t)

	m.processes.EXPECT().GetAimaProcess(gomock.Any(), testUserID).Return(storedProcess(), nil)
	m.processes.EXPECT().SaveAimaProcess(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, process models.AimaProcess) (models.AimaProcess, error) {
			assert.Nil(t, process.ProcessType)
			assert.Equal(t, []string{"sealed-1"}, process.Protocols, "untouched protocols stay sealed")
			return echoSave(ctx, process)
		})
	m.cipher.EXPECT().Decrypt(gomock.Any(), "sealed-1", testUserID).Return("AIMA-001")

	_, err := svc.UpdateProcess(context.Background(), models.AimaProcessUpdate{UserID: testUserID, ProcessType: ptr("")})

	require.NoError(t, err)
}

func TestSelectProcessType_ResetsLists(t *testing.T) {
	svc, m := newTestAimaService(t)

	m.processes.EXPECT().GetAimaProcess(gomock.Any(), testUserID).Return(storedProcess(), nil)
	m.processes.EXPECT().SaveAimaProcess(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, process models.AimaProcess) (models.AimaProcess, error) {
			assert.Equal(t, "renovacao", *process.ProcessType)
			assert.Empty(t, process.CompletedSteps)
			assert.Empty(t, process.ImportantDates)
			assert.Empty(t, process.Protocols)
			return echoSave(ctx, process)
		})

	got, err := svc.SelectProcessType(context.Background(), testUserID, "renovacao")

	require.NoError(t, err)
	assert.Equal(t, 1, got.Step)
}

func TestSelectProcessType_Empty(t *testing.T) {
	svc, _ := newTestAimaService(t)

	_, err := svc.SelectProcessType(context.Background(), testUserID, " ")

	assert.ErrorIs(t, err, validators.ErrEmptyProcessType)
}

func TestToggleStep(t *testing.T) {
	tests := []struct {
		name      string
		step      string
		wantSteps []string
		wantStep  int
	}{
		{name: "complete", step: "entrevista", wantSteps: []string{"agendamento", "entrevista"}, wantStep: 3},
		{name: "undo", step: "agendamento", wantSteps: []string{}, wantStep: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestAimaService(t)

			m.processes.EXPECT().GetAimaProcess(gomock.Any(), testUserID).Return(storedProcess(), nil)
			m.processes.EXPECT().SaveAimaProcess(gomock.Any(), gomock.Any()).DoAndReturn(echoSave)
			m.cipher.EXPECT().Decrypt(gomock.Any(), "sealed-1", testUserID).Return("AIMA-001")

			got, err := svc.ToggleStep(context.Background(), testUserID, tt.step)

			require.NoError(t, err)
			assert.Equal(t, tt.wantSteps, got.CompletedSteps)
			assert.Equal(t, tt.wantStep, got.Step)
		})
	}
}

func TestToggleStep_MissingProcess(t *testing.T) {
	svc, m := newTestAimaService(t)

	m.processes.EXPECT().GetAimaProcess(gomock.Any(), testUserID).Return(models.AimaProcess{}, store.ErrAimaProcessNotFound)

	_, err := svc.ToggleStep(context.Background(), testUserID, "agendamento")

	assert.ErrorIs(t, err, store.ErrAimaProcessNotFound)
}

func TestAddImportantDate(t *testing.T) {
	svc, m := newTestAimaService(t)

	m.processes.EXPECT().GetAimaProcess(gomock.Any(), testUserID).Return(storedProcess(), nil)
	m.processes.EXPECT().SaveAimaProcess(gomock.Any(), gomock.Any()).DoAndReturn(echoSave)
	m.cipher.EXPECT().Decrypt(gomock.Any(), "sealed-1", testUserID).Return("AIMA-001")

	got, err := svc.AddImportantDate(context.Background(), testUserID, models.ImportantDate{Label: " Biometria ", Date: "2026-04-01"})

	require.NoError(t, err)
	assert.Equal(t, []models.ImportantDate{
		{Label: "Entrevista", Date: "2026-03-15"},
		{Label: "Biometria", Date: "2026-04-01"},
	}, got.ImportantDates)
}

func TestAddImportantDate_Invalid(t *testing.T) {
	svc, _ := newTestAimaService(t)

	_, err := svc.AddImportantDate(context.Background(), testUserID, models.ImportantDate{Label: "Biometria", Date: "01/04/2026"})
	assert.ErrorIs(t, err, validators.ErrInvalidDate)

	_, err = svc.AddImportantDate(context.Background(), testUserID, models.ImportantDate{Date: "2026-04-01"})
	assert.ErrorIs(t, err, validators.ErrEmptyLabel)
}

func TestAddProtocol_EncryptsValue(t *testing.T) {
	svc, m := newTestAimaService(t)

	m.processes.EXPECT().GetAimaProcess(gomock.Any(), testUserID).Return(storedProcess(), nil)
	m.cipher.EXPECT().Encrypt(gomock.Any(), "AIMA-002", testUserID).Return("sealed-2", nil)
	m.processes.EXPECT().SaveAimaProcess(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, process models.AimaProcess) (models.AimaProcess, error) {
			assert.Equal(t, []string{"sealed-1", "sealed-2"}, process.Protocols)
			return echoSave(ctx, process)
		})
	m.cipher.EXPECT().Decrypt(gomock.Any(), "sealed-1", testUserID).Return("AIMA-001")
	m.cipher.EXPECT().Decrypt(gomock.Any(), "sealed-2", testUserID).Return("AIMA-002")

	got, err := svc.AddProtocol(context.Background(), testUserID, " AIMA-002")

	require.NoError(t, err)
	assert.Equal(t, []string{"AIMA-001", "AIMA-002"}, got.Protocols)
}

func TestAddProtocol_EncryptionFailure(t *testing.T) {
	svc, m := newTestAimaService(t)

	m.processes.EXPECT().GetAimaProcess(gomock.Any(), testUserID).Return(storedProcess(), nil)
	m.cipher.EXPECT().Encrypt(gomock.Any(), "AIMA-002", testUserID).Return("", crypto.ErrEncryptionFailed)

	_, err := svc.AddProtocol(context.Background(), testUserID, "AIMA-002")

	assert.ErrorIs(t, err, crypto.ErrEncryptionFailed)
}

func TestClearProcess(t *testing.T) {
	svc, m := newTestAimaService(t)

	m.processes.EXPECT().GetAimaProcess(gomock.Any(), testUserID).Return(storedProcess(), nil)
	m.processes.EXPECT().SaveAimaProcess(gomock.Any(), gomock.Any()).DoAndReturn(echoSave)

	got, err := svc.ClearProcess(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Nil(t, got.ProcessType)
	assert.Empty(t, got.CompletedSteps)
	assert.Empty(t, got.ImportantDates)
	assert.Empty(t, got.Protocols)
	assert.Equal(t, testProcessID, got.ID)
}
