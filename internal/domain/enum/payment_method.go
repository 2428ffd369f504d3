package enum

// PaymentMethod is how a sale is settled
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodKasbon PaymentMethod = "kasbon"
)

// PaymentMethodFor returns kasbon for credit sales and cash otherwise
func PaymentMethodFor(isCredit bool) PaymentMethod {
	if isCredit {
		return PaymentMethodKasbon
	}
	return PaymentMethodCash
}

func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCash || m == PaymentMethodKasbon
}

// Label is the receipt wording
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodKasbon:
		return "Kasbon"
	case PaymentMethodCash:
		return "Tunai"
	default:
		return string(m)
	}
}
