package validator

import (
	"testing"

	"github.com/sangkips/kasir/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	Quantity int   `json:"quantity" validate:"gt=0"`
	Price    int64 `json:"price" validate:"gte=0"`
}

type order struct {
	Branch string `json:"branch_name" validate:"notblank"`
	Method string `json:"payment_method" validate:"oneof=cash kasbon"`
	Items  []line `json:"items" validate:"min=1,dive"`
}

func TestValidateStruct_Valid(t *testing.T) {
	err := ValidateStruct(order{Branch: "Pusat", Method: "cash", Items: []line{{Quantity: 1, Price: 0}}})
	assert.NoError(t, err)
}

func TestValidateStruct_ReportsJSONFieldNames(t *testing.T) {
	err := ValidateStruct(order{Branch: "  ", Method: "transfer", Items: []line{{Quantity: 0, Price: -1}}})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)

	fields := make([]string, 0, len(appErr.Errors))
	for _, fe := range appErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"branch_name", "payment_method", "items[0].quantity", "items[0].price"}, fields)
}
