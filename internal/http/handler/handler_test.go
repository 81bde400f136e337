package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tenantconsole/internal/export"
	"tenantconsole/internal/model"
	"tenantconsole/internal/service"
	serviceMocks "tenantconsole/internal/service/mocks"
	"tenantconsole/internal/storage"
)

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListProfiles(t *testing.T) {
	mockSvc := new(serviceMocks.MockProfileService)
	app := fiber.New()
	app.Get("/profiles", ListProfiles(mockSvc))

	t.Run("filters", func(t *testing.T) {
		start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		mockSvc.On("List", mock.Anything, mock.MatchedBy(func(f model.ProfileFilter) bool {
			return f.Role == "stylist" && f.Status == "active" && f.Search == "sari" &&
				f.DateRange != nil && f.DateRange.Start.Equal(start) && f.DateRange.End == nil
		})).Return([]model.Profile{{ID: "p-1"}}, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/profiles?role=stylist&status=active&search=sari&start=2024-05-01", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var items []model.Profile
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
		assert.Len(t, items, 1)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid date", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/profiles?end=yesterday", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_DATE", decodeError(t, resp).Error.Code)
	})

	t.Run("invalid status", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: unknown status %q", service.ErrValidation, "gone")).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/profiles?status=gone", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, resp).Error.Code)
	})
}

func TestCreateProfile(t *testing.T) {
	mockSvc := new(serviceMocks.MockProfileService)
	app := fiber.New()
	app.Post("/profiles", CreateProfile(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(in model.ProfileInput) bool {
			return in.Email != nil && *in.Email == "sari@example.com"
		})).Return(&model.Profile{ID: "p-1", Email: "sari@example.com"}, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/profiles", `{"full_name":"Sari","email":"sari@example.com"}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/profiles", `{"email":`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})
}

func TestGetProfile(t *testing.T) {
	mockSvc := new(serviceMocks.MockProfileService)
	app := fiber.New()
	app.Get("/profiles/:id", GetProfile(mockSvc))

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "p-9").Return(nil, service.ErrNotFound).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/profiles/p-9", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		assert.Equal(t, profileNotFound, body.Error.Message)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "p-1").Return(nil, errors.New("pq: connection refused")).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/profiles/p-1", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.NotContains(t, body.Error.Message, "pq")
	})
	mockSvc.AssertExpectations(t)
}

func TestToggleAndDeleteProfile(t *testing.T) {
	mockSvc := new(serviceMocks.MockProfileService)
	app := fiber.New()
	app.Post("/profiles/:id/toggle-status", ToggleProfileStatus(mockSvc))
	app.Delete("/profiles/:id", DeleteProfile(mockSvc))

	mockSvc.On("ToggleStatus", mock.Anything, "p-1").Return(&model.Profile{ID: "p-1", IsActive: false}, nil).Once()
	mockSvc.On("Delete", mock.Anything, "p-1").Return(nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/profiles/p-1/toggle-status", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/profiles/p-1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestClientStats(t *testing.T) {
	mockSvc := new(serviceMocks.MockOverviewService)
	app := fiber.New()
	app.Get("/overview/stats", ClientStats(mockSvc))

	mockSvc.On("ClientStats", mock.Anything).Return(&model.ClientStats{TotalClients: 3, MonthlyRevenue: 179.97}, nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/overview/stats", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var st model.ClientStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, 3, st.TotalClients)
	mockSvc.AssertExpectations(t)
}

func TestCreateBackup(t *testing.T) {
	mockSvc := new(serviceMocks.MockBackupService)
	app := fiber.New()
	app.Post("/backups", CreateBackup(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(o model.BackupOptions) bool {
			return o.Type == model.BackupTypeFull && len(o.Tables) == 1 && o.Tables[0] == "members"
		})).Return(&service.BackupResult{Tables: []string{"members"}, FilePaths: []string{}}, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/backups", `{"type":"full","tables":["members"]}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid table", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: secrets", service.ErrInvalidTable)).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/backups", `{"type":"full","tables":["secrets"]}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_TABLE", decodeError(t, resp).Error.Code)
	})
}

func TestQuickBackup(t *testing.T) {
	mockSvc := new(serviceMocks.MockBackupService)
	app := fiber.New()
	app.Post("/backups/quick", QuickBackup(mockSvc))

	mockSvc.On("QuickBackup", mock.Anything, "members", true, true).
		Return(&service.BackupResult{Tables: []string{"members"}}, nil).Once()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/backups/quick", `{"table":"members","include_local":true}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestRestoreBackup(t *testing.T) {
	mockSvc := new(serviceMocks.MockBackupService)
	app := fiber.New()
	app.Post("/backups/:id/restore", RestoreBackup(mockSvc))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "mismatch", err: service.ErrConfirmationMismatch, wantStatus: http.StatusUnprocessableEntity, wantCode: "CONFIRMATION_MISMATCH"},
		{name: "missing", err: service.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "malformed record", err: fmt.Errorf("%w: no data", service.ErrInvalidBackupRecord), wantStatus: http.StatusInternalServerError, wantCode: "INVALID_BACKUP_RECORD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc.On("Restore", mock.Anything, "b-1", "members").Return(tt.err).Once()

			resp, err := app.Test(jsonRequest(http.MethodPost, "/backups/b-1/restore", `{"confirm":"members"}`))
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, resp).Error.Code)
			}
		})
	}
	mockSvc.AssertExpectations(t)
}

func TestDownloadArtifact(t *testing.T) {
	mockSvc := new(serviceMocks.MockBackupService)
	app := fiber.New()
	app.Get("/backups/:id/files", DownloadArtifact(mockSvc))
	key := "members_backup_2024-05-01T10-20-30-123Z/members.sql"

	t.Run("success", func(t *testing.T) {
		payload := "INSERT INTO members VALUES ('m-1');\n"
		mockSvc.On("OpenArtifact", mock.Anything, "b-1", key).
			Return(io.NopCloser(strings.NewReader(payload)), storage.ObjectInfo{Key: key, Size: int64(len(payload)), ContentType: export.ContentTypeSQL}, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/backups/b-1/files?key="+key, nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, export.ContentTypeSQL, resp.Header.Get(fiber.HeaderContentType))
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "members.sql")
		b, _ := io.ReadAll(resp.Body)
		assert.Equal(t, payload, string(b))
	})

	t.Run("missing key", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/backups/b-1/files", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "KEY_REQUIRED", decodeError(t, resp).Error.Code)
	})
	mockSvc.AssertExpectations(t)
}

func TestArtifactLink(t *testing.T) {
	mockSvc := new(serviceMocks.MockBackupService)
	app := fiber.New()
	app.Get("/backups/:id/link", ArtifactLink(mockSvc))

	mockSvc.On("ArtifactURL", mock.Anything, "b-1", "k/members.sql", 15*time.Minute).
		Return("https://minio.local/backups/k/members.sql?X-Amz-Signature=x", nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/backups/b-1/link?key=k/members.sql&expiry=15m", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/backups/b-1/link?key=k/members.sql&expiry=30d", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_EXPIRY", decodeError(t, resp).Error.Code)
	mockSvc.AssertExpectations(t)
}

func TestListSchedules(t *testing.T) {
	mockSvc := new(serviceMocks.MockScheduleService)
	app := fiber.New()
	app.Get("/schedules", ListSchedules(mockSvc))
	mockSvc.On("List", mock.Anything).Return([]model.BackupSchedule{
		{ClientID: "c-1", Active: true},
		{ClientID: "c-2", Active: false},
	}, nil)

	var got []model.BackupSchedule
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/schedules?active=true", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "c-1", got[0].ClientID)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/schedules", nil))
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Len(t, got, 2)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/schedules?active=maybe", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_QUERY", decodeError(t, resp).Error.Code)
}

func TestPutSchedule(t *testing.T) {
	mockSvc := new(serviceMocks.MockScheduleService)
	app := fiber.New()
	app.Put("/schedules/:clientId", PutSchedule(mockSvc))
	clientID := "3f1c2a9e-7b4d-4c1e-9a2b-5d6e7f8a9b0c"

	mockSvc.On("Upsert", mock.Anything, clientID, mock.MatchedBy(func(in service.ScheduleInput) bool {
		return in.Frequency == "daily" && in.Time == "03:00"
	})).Return(&model.BackupSchedule{ClientID: clientID, Frequency: "daily"}, nil).Once()
	mockSvc.On("Upsert", mock.Anything, clientID, mock.MatchedBy(func(in service.ScheduleInput) bool {
		return in.Frequency == "hourly"
	})).Return(nil, fmt.Errorf("%w: Frequency must be one of daily weekly monthly", service.ErrValidation)).Once()

	resp, err := app.Test(jsonRequest(http.MethodPut, "/schedules/"+clientID, `{"frequency":"daily","time":"03:00"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodPut, "/schedules/"+clientID, `{"frequency":"hourly","time":"03:00"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp).Error.Message, "Frequency")
	mockSvc.AssertExpectations(t)
}

func TestRunDueSchedules(t *testing.T) {
	mockSvc := new(serviceMocks.MockScheduleService)
	app := fiber.New()
	app.Post("/schedules/run", RunDueSchedules(mockSvc))

	mockSvc.On("RunDue", mock.Anything).Return(service.RunSummary{Due: 2, Succeeded: 2}, nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/schedules/run", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var sum service.RunSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sum))
	assert.Equal(t, 2, sum.Succeeded)
}

func TestTableRows(t *testing.T) {
	mockSvc := new(serviceMocks.MockSchemaService)
	app := fiber.New()
	app.Get("/tables/:table/rows", TableRows(mockSvc))

	mockSvc.On("Rows", mock.Anything, "members", 25).Return([]model.Row{{"id": "m-1"}}, nil).Once()
	mockSvc.On("Rows", mock.Anything, "secrets", 0).Return(nil, fmt.Errorf("%w: secrets", service.ErrInvalidTable)).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/tables/members/rows?limit=25", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/tables/secrets/rows", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_TABLE", decodeError(t, resp).Error.Code)
	mockSvc.AssertExpectations(t)
}

func TestUpdateRow(t *testing.T) {
	mockSvc := new(serviceMocks.MockSchemaService)
	app := fiber.New()
	app.Patch("/tables/:table/rows/:id", UpdateRow(mockSvc))

	mockSvc.On("UpdateRow", mock.Anything, "members", "m-9", model.Row{"name": "Dewi"}).Return(nil, service.ErrNotFound).Once()

	resp, err := app.Test(jsonRequest(http.MethodPatch, "/tables/members/rows/m-9", `{"name":"Dewi"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, rowNotFound, decodeError(t, resp).Error.Message)
	mockSvc.AssertExpectations(t)
}

func TestExportTable(t *testing.T) {
	mockSvc := new(serviceMocks.MockSchemaService)
	app := fiber.New()
	app.Get("/tables/:table/export", ExportTable(mockSvc))

	mockSvc.On("Export", mock.Anything, "members", export.FormatCSV).
		Return(export.File{Name: "members.csv", ContentType: export.ContentTypeCSV, Data: []byte("id\nm-1\n")}, nil).Once()
	mockSvc.On("Export", mock.Anything, "members", export.FormatXLSX).
		Return(export.File{Name: "members.xlsx", ContentType: export.ContentTypeXLSX, Data: []byte("PK")}, nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/tables/members/export?format=csv", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, export.ContentTypeCSV, resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="members.csv"`, resp.Header.Get(fiber.HeaderContentDisposition))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/tables/members/export", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestStartSession(t *testing.T) {
	mockSvc := new(serviceMocks.MockSessionService)
	app := fiber.New()
	app.Post("/sessions", StartSession(mockSvc))

	mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(in service.SessionInput) bool {
		return in.UserID == "u-1" && in.IPAddress != "" && in.DeviceInfo.Type == "desktop"
	})).Return("s-1", nil).Once()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/sessions", `{"user_id":"u-1","profile_id":"p-1","device_info":{"type":"desktop"}}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "s-1", body["id"])
	mockSvc.AssertExpectations(t)
}

func TestSessionActions(t *testing.T) {
	mockSvc := new(serviceMocks.MockSessionService)
	app := fiber.New()
	app.Post("/sessions/:id/actions", RecordSessionAction(mockSvc))
	app.Post("/sessions/cleanup", CleanupSessions(mockSvc))

	mockSvc.On("IncrementActions", mock.Anything, "gone").Return(service.ErrNotFound).Once()
	mockSvc.On("CleanupStale", mock.Anything).Return(int64(4), nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/sessions/gone/actions", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/sessions/cleanup", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]int64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(4), body["ended"])
	mockSvc.AssertExpectations(t)
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	mockProfiles := new(serviceMocks.MockProfileService)
	mockBackups := new(serviceMocks.MockBackupService)
	RegisterRoutes(app, nil, Services{Profiles: mockProfiles, Backups: mockBackups})

	t.Run("not found route", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/health", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("static segment wins over id", func(t *testing.T) {
		mockProfiles.On("Stats", mock.Anything).Return(&model.ProfileStats{TotalProfiles: 2}, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/profiles/stats", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockProfiles.AssertExpectations(t)
	})

	t.Run("unregistered service", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("health without database", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}
