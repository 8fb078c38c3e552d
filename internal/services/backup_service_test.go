package services

import (
	"encoding/json"
	"strings"
	"testing"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestBackupImportAppendsExactly(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	file := BackupFile{
		Metadata: BackupMetadata{Version: backupVersion, Scope: ScopeClients, Counts: map[string]int{"clients": 2}},
		Clients: []models.Client{
			{ID: 99, Name: "Maria Lopez", DNI: "30111222"},
			{ID: 100, Name: "Juan Perez", DNI: "28555666"},
		},
	}
	raw, _ := json.Marshal(file)

	// cada cliente importado se inserta tal cual, sin dedupe, en una transaccion
	mock.ExpectBegin()
	for i := 0; i < 2; i++ {
		mock.ExpectExec("INSERT INTO clients").WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
	}
	mock.ExpectCommit()

	svc := BackupService{ClientRepo: repositories.ClientRepository{DB: db}}
	res, err := svc.ImportClients(raw)
	if err != nil {
		t.Fatalf("ImportClients error: %v", err)
	}
	if res.ClientsAppended != 2 {
		t.Fatalf("ClientsAppended = %d, want 2", res.ClientsAppended)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBackupImportRejectsMalformedFile(t *testing.T) {
	svc := BackupService{}

	for _, raw := range []string{"", "   ", "{not json", `{"metadata":{},"clients":[]}`} {
		_, err := svc.ImportClients([]byte(raw))
		if err == nil {
			t.Errorf("expected error for %q", raw)
			continue
		}
		if !domain.IsValidation(err) {
			t.Errorf("expected validation error for %q, got %v", raw, err)
		}
	}
}

func TestBackupExportRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM clients ORDER").WillReturnRows(clientRows())

	svc := BackupService{ClientRepo: repositories.ClientRepository{DB: db}}
	file, err := svc.Export(ScopeClients)
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if file.Metadata.Version != backupVersion || file.Metadata.Counts["clients"] != 1 {
		t.Fatalf("unexpected metadata %+v", file.Metadata)
	}

	raw, _ := json.Marshal(file)
	var back BackupFile
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("re-decode error: %v", err)
	}
	if len(back.Clients) != len(file.Clients) {
		t.Fatalf("round trip lost clients: %d vs %d", len(back.Clients), len(file.Clients))
	}
}

func TestBackupExportRejectsUnknownScope(t *testing.T) {
	svc := BackupService{}
	if _, err := svc.Export("everything"); err == nil || !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestClientsCSVHeaderOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM clients ORDER").WillReturnRows(clientRows())

	svc := BackupService{ClientRepo: repositories.ClientRepository{DB: db}}
	out, err := svc.ExportClientsCSV()
	if err != nil {
		t.Fatalf("ExportClientsCSV error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if lines[0] != "id,name,dni,phone,email,address,dni_expiry,passport_expiry" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
}
