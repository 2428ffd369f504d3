package enum

// CashLogType distinguishes opening from closing cash counts
type CashLogType string

const (
	CashLogOpening CashLogType = "opening_cash"
	CashLogClosing CashLogType = "closing_cash"
)

func (t CashLogType) IsValid() bool {
	return t == CashLogOpening || t == CashLogClosing
}
