package service

import (
	"fmt"
	"strings"

	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/internal/domain/enum"
	"github.com/sangkips/kasir/pkg/money"
)

// DefaultReceiptHeader is printed when the store has no name configured
const DefaultReceiptHeader = "STRUK PEMBAYARAN"

// BuildReceipt renders the shareable receipt text. Blank lines are part of
// the layout. The output depends only on fields.
func BuildReceipt(fields entity.ReceiptFields) string {
	header := strings.TrimSpace(fields.Header)
	if header == "" {
		header = DefaultReceiptHeader
	}

	lines := []string{
		header,
		"No. Transaksi: " + fields.TransactionNumber,
		"Cabang: " + fields.BranchName,
		"Pelanggan: " + fields.CustomerName,
		"Kasir: " + fields.CashierName,
		"",
	}

	if len(fields.Items) == 0 {
		lines = append(lines, "-")
	}
	for i, item := range fields.Items {
		quantity := strings.TrimSpace(fmt.Sprintf("%d %s", item.Quantity, item.Unit))
		lines = append(lines, fmt.Sprintf("%d. %s - %s x %s = %s",
			i+1,
			item.Name,
			quantity,
			money.FormatAmount(item.Price),
			money.FormatAmount(item.Subtotal),
		))
	}

	lines = append(lines,
		"",
		"Metode Pembayaran: "+fields.PaymentMethod.Label(),
		"Total: "+money.FormatAmount(fields.Total),
		"Dibayar: "+money.FormatAmount(fields.Received),
		"Kembalian: "+money.FormatAmount(fields.Change),
	)
	return strings.Join(lines, "\n")
}

// ReceiptFieldsFromTransaction composes receipt fields from a server
// transaction. A zero received amount falls back to paid plus change.
func ReceiptFieldsFromTransaction(tx *entity.Transaction, header, cashier string, received int64) entity.ReceiptFields {
	if cashier == "" {
		cashier = tx.CashierName
	}
	if received <= 0 {
		received = tx.PaidAmount + tx.ChangeAmount
	}
	change := tx.ChangeAmount
	if change == 0 && received > tx.Total {
		change = received - tx.Total
	}

	items := make([]entity.ReceiptItem, 0, len(tx.Items))
	for _, item := range tx.Items {
		items = append(items, entity.ReceiptItem{
			Name:     item.ProductName,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			Price:    item.Price,
			Subtotal: item.Subtotal,
		})
	}

	method := tx.PaymentMethod
	if method == "" {
		method = enum.PaymentMethodFor(tx.IsCredit)
	}

	return entity.ReceiptFields{
		Header:            header,
		TransactionNumber: tx.Number(),
		BranchName:        tx.BranchName,
		CustomerName:      tx.CustomerName,
		CashierName:       cashier,
		Items:             items,
		PaymentMethod:     method,
		Total:             tx.Total,
		Received:          received,
		Change:            change,
	}
}
