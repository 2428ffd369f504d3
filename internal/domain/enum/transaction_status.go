package enum

// TransactionStatus is the settlement state of a transaction
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
)

// TransactionStatusFor infers the status from the credit flag: a kasbon sale
// stays pending until the balance is settled.
func TransactionStatusFor(isCredit bool) TransactionStatus {
	if isCredit {
		return TransactionStatusPending
	}
	return TransactionStatusCompleted
}

func (s TransactionStatus) IsValid() bool {
	return s == TransactionStatusPending || s == TransactionStatusCompleted
}
