package services

import (
	"bytes"
	"fmt"
	"strings"

	"backend/internal/domain"
	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReceiptService renders the printable proof of a payment as a PDF.
type ReceiptService struct {
	PaymentRepo repositories.PaymentRepository
	ClientRepo  repositories.ClientRepository
	TripRepo    repositories.TripRepository
	RequestID   string
	// Loader overrides data fetching in tests.
	Loader func(int64) (receiptData, error)
}

type receiptData struct {
	PaymentID     int64
	ReceiptNumber string
	ClientName    string
	ClientDNI     string
	Amount        float64
	Currency      string
	Description   string
	Date          string
	TripDest      string
}

func (s ReceiptService) GenerateReceipt(paymentID int64) ([]byte, string, error) {
	data, err := s.loadReceiptData(paymentID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "receipts", "generate", fmt.Sprintf("payment_id=%d", paymentID))
	return buildReceiptPDF(data)
}

func (s ReceiptService) loadReceiptData(paymentID int64) (receiptData, error) {
	if s.Loader != nil {
		return s.Loader(paymentID)
	}

	p, err := s.PaymentRepo.GetByID(paymentID)
	if err != nil {
		return receiptData{}, err
	}
	if p.Type != domain.MovementPayment {
		return receiptData{}, domain.ValidationError{Field: "type", Msg: "solo los pagos tienen recibo"}
	}

	out := receiptData{
		PaymentID:     p.ID,
		ReceiptNumber: p.ReceiptNumber,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Description:   p.Description,
		Date:          p.Date,
	}
	if out.ReceiptNumber == "" {
		out.ReceiptNumber = fmt.Sprintf("R-%06d", p.ID)
	}

	if cl, err := s.ClientRepo.GetByID(p.ClientID); err == nil {
		out.ClientName = cl.Name
		out.ClientDNI = cl.DNI
	}
	if p.TripID > 0 {
		if trip, err := s.TripRepo.GetByID(p.TripID); err == nil {
			out.TripDest = trip.Destination
		}
	}
	return out, nil
}

func buildReceiptPDF(d receiptData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Recibo de pago", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RECIBO DE PAGO")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Recibo Nro     : %s", safe(d.ReceiptNumber, "-")),
		fmt.Sprintf("Fecha          : %s", safe(d.Date, "-")),
		fmt.Sprintf("Cliente        : %s", safe(d.ClientName, "-")),
		fmt.Sprintf("DNI            : %s", safe(d.ClientDNI, "-")),
		fmt.Sprintf("Concepto       : %s", safe(d.Description, "Pago a cuenta")),
	}
	if d.TripDest != "" {
		lines = append(lines, fmt.Sprintf("Viaje          : %s", d.TripDest))
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Importe recibido: "+utils.FormatAmount(d.Amount, d.Currency))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Este recibo acredita el pago recibido y queda sujeto a la rendicion final de la cuenta del cliente.", "", "", false)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, "Emitido el "+utils.FormatDate(utils.NowUTC()))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECIBO_%s.pdf", safeFilenamePart(d.ReceiptNumber))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", "\"", "", "'", "")
	s = replacer.Replace(s)
	if s == "" {
		return "SN"
	}
	return s
}
