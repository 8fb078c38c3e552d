package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"
)

const backupVersion = "1.0"

// Backup export scopes.
const (
	ScopeFull     = "full"
	ScopeClients  = "clients"
	ScopeAccounts = "accounts"
)

// BackupMetadata is the header block of every backup file.
type BackupMetadata struct {
	ExportedAt string         `json:"exportedAt"`
	Version    string         `json:"version"`
	Scope      string         `json:"scope"`
	Counts     map[string]int `json:"counts"`
}

// BackupFile is the on-disk shape of a JSON backup.
type BackupFile struct {
	Metadata       BackupMetadata         `json:"metadata"`
	Clients        []models.Client        `json:"clients,omitempty"`
	Buses          []models.Bus           `json:"buses,omitempty"`
	Trips          []models.Trip          `json:"trips,omitempty"`
	TripPassengers []models.TripPassenger `json:"tripPassengers,omitempty"`
	Payments       []models.Payment       `json:"payments,omitempty"`
}

// BackupService builds export files and applies append-only imports.
type BackupService struct {
	ClientRepo    repositories.ClientRepository
	BusRepo       repositories.BusRepository
	TripRepo      repositories.TripRepository
	PassengerRepo repositories.TripPassengerRepository
	PaymentRepo   repositories.PaymentRepository
	AccountSvc    AccountService
	RequestID     string
}

// Export builds a backup for the given scope: full, clients (clients only) or
// accounts (clients + trips + trip passengers + payments).
func (s BackupService) Export(scope string) (BackupFile, error) {
	scope = strings.ToLower(strings.TrimSpace(scope))
	if scope == "" {
		scope = ScopeFull
	}
	if scope != ScopeFull && scope != ScopeClients && scope != ScopeAccounts {
		return BackupFile{}, domain.ValidationError{Field: "scope", Msg: "alcance de backup desconocido"}
	}

	out := BackupFile{
		Metadata: BackupMetadata{
			ExportedAt: utils.FormatDateTime(utils.NowUTC()),
			Version:    backupVersion,
			Scope:      scope,
			Counts:     map[string]int{},
		},
	}

	var err error
	if out.Clients, err = s.ClientRepo.List(); err != nil {
		return BackupFile{}, err
	}
	out.Metadata.Counts["clients"] = len(out.Clients)

	if scope == ScopeClients {
		return out, nil
	}

	if scope == ScopeFull {
		if out.Buses, err = s.BusRepo.List(); err != nil {
			return BackupFile{}, err
		}
		out.Metadata.Counts["buses"] = len(out.Buses)
	}

	if out.Trips, err = s.TripRepo.List(); err != nil {
		return BackupFile{}, err
	}
	if out.TripPassengers, err = s.PassengerRepo.List(); err != nil {
		return BackupFile{}, err
	}
	if out.Payments, err = s.PaymentRepo.List(); err != nil {
		return BackupFile{}, err
	}
	out.Metadata.Counts["trips"] = len(out.Trips)
	out.Metadata.Counts["tripPassengers"] = len(out.TripPassengers)
	out.Metadata.Counts["payments"] = len(out.Payments)

	utils.LogEvent(s.RequestID, "backup", "export", "scope="+scope)
	return out, nil
}

// ImportResult reports what an import appended.
type ImportResult struct {
	ClientsAppended int `json:"clientsAppended"`
}

// ImportClients appends the clients portion of a backup file. Existing rows
// are never replaced or deduplicated; a malformed file is rejected before any
// store call.
func (s BackupService) ImportClients(raw []byte) (ImportResult, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return ImportResult{}, domain.ValidationError{Field: "file", Msg: "archivo vacio"}
	}

	var file BackupFile
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&file); err != nil {
		return ImportResult{}, domain.ValidationError{Field: "file", Msg: "archivo de backup invalido", Err: err}
	}
	if len(file.Clients) == 0 {
		return ImportResult{}, domain.ValidationError{Field: "clients", Msg: "el archivo no contiene clientes"}
	}

	n, err := s.ClientRepo.AppendClients(file.Clients)
	if err != nil {
		return ImportResult{ClientsAppended: n}, err
	}

	utils.LogEvent(s.RequestID, "backup", "import", fmt.Sprintf("clients_appended=%d", n))
	return ImportResult{ClientsAppended: n}, nil
}

// Fixed header orders for the CSV exports.
var (
	clientsCSVHeader  = []string{"id", "name", "dni", "phone", "email", "address", "dni_expiry", "passport_expiry"}
	accountsCSVHeader = []string{"client_id", "client_name", "currency", "total_charges", "total_payments", "balance"}
)

// ExportClientsCSV renders the clients table with the documented column order.
func (s BackupService) ExportClientsCSV() ([]byte, error) {
	clients, err := s.ClientRepo.List()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(clientsCSVHeader)
	for _, c := range clients {
		_ = w.Write([]string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			c.DNI,
			c.Phone,
			c.Email,
			c.Address,
			c.DNIExpiry,
			c.PassportExpiry,
		})
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportAccountsCSV renders per-client per-currency balance summaries.
func (s BackupService) ExportAccountsCSV() ([]byte, error) {
	rows, err := s.AccountSvc.SummaryRows()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(accountsCSVHeader)
	for _, r := range rows {
		_ = w.Write([]string{
			strconv.FormatInt(r.ClientID, 10),
			r.ClientName,
			r.Currency,
			utils.FormatMoney(r.TotalCharges),
			utils.FormatMoney(r.TotalPayments),
			utils.FormatMoney(r.Balance),
		})
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
