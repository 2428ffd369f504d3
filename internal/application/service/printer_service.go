package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/internal/domain/enum"
	"github.com/sangkips/kasir/internal/domain/repository"
	"github.com/sangkips/kasir/pkg/printer"
)

// PrinterService prints receipts on the till's thermal printer.
type PrinterService struct {
	printer         printer.Printer
	transactionRepo repository.TransactionRepository
	printerType     string
	receiptHeader   string
	width           int
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	transactionRepo repository.TransactionRepository,
	printerType string,
	receiptHeader string,
	width int,
) *PrinterService {
	if width <= 0 {
		width = printer.Width58mm
	}
	return &PrinterService{
		printer:         p,
		transactionRepo: transactionRepo,
		printerType:     printerType,
		receiptHeader:   receiptHeader,
		width:           width,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
	Width      int    `json:"width"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus(ctx context.Context) *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(ctx),
		Type:       s.printer.Type(),
		Width:      s.width,
	}
}

// TestPrint sends a sample receipt to the printer.
// Returns the receipt text so the handler can show it when no printer is set up.
func (s *PrinterService) TestPrint(ctx context.Context) (string, error) {
	text := BuildReceipt(entity.ReceiptFields{
		Header:            "TES PRINTER",
		TransactionNumber: "TEST-001",
		BranchName:        "-",
		CustomerName:      "-",
		CashierName:       "System",
		Items: []entity.ReceiptItem{
			{Name: "Barang Tes 1", Quantity: 1, Unit: "pcs", Price: 10000, Subtotal: 10000},
			{Name: "Barang Tes 2", Quantity: 2, Unit: "pcs", Price: 5000, Subtotal: 10000},
		},
		PaymentMethod: enum.PaymentMethodCash,
		Total:         20000,
		Received:      20000,
	})

	if err := s.printer.Print(ctx, FormatReceipt(text, s.width)); err != nil {
		return text, fmt.Errorf("test print failed: %w", err)
	}
	return text, nil
}

// PrintTransactionReceipt fetches a transaction and prints its receipt. A
// zero received amount uses what the server recorded.
func (s *PrinterService) PrintTransactionReceipt(ctx context.Context, transactionID, cashier string, received int64) (string, error) {
	tx, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return "", err
	}

	text := BuildReceipt(ReceiptFieldsFromTransaction(tx, s.receiptHeader, cashier, received))
	return text, s.PrintText(ctx, text)
}

// PrintText prints already rendered receipt text.
func (s *PrinterService) PrintText(ctx context.Context, text string) error {
	if err := s.printer.Print(ctx, FormatReceipt(text, s.width)); err != nil {
		log.Printf("Printer error (%s): %v", s.printer.Type(), err)
		return fmt.Errorf("failed to print receipt: %w", err)
	}
	return nil
}

// FormatReceipt converts receipt text into ESC/POS bytes. The first line is
// the header; "Label: value" lines after the items are right aligned.
func FormatReceipt(text string, width int) []byte {
	doc := printer.NewDocument(width)
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return doc.Bytes()
	}

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(lines[0]).
		SetFontSize(printer.FontNormal).
		SetBold(false).
		SetAlign(printer.AlignLeft).
		Separator('-')

	section := 0
	for _, line := range lines[1:] {
		if line == "" {
			section++
			doc.Separator('-')
			continue
		}
		key, value, ok := strings.Cut(line, ": ")
		switch {
		case section == 2 && ok && key == "Total":
			doc.SetBold(true).KeyValue(key+":", value).SetBold(false)
		case ok && section != 1:
			doc.KeyValue(key+":", value)
		default:
			doc.Text(line)
		}
	}

	doc.Separator('-').
		SetAlign(printer.AlignCenter).
		Text("Terima kasih").
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
