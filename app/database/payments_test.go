package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"swaram-cms/app/models"
)

func TestPaymentInputValidate(t *testing.T) {
	ref := "CHQ-104"
	empty := ""

	cases := []struct {
		name    string
		input   PaymentInput
		wantErr error
	}{
		{
			name:  "cash needs no reference",
			input: PaymentInput{Payee: "Asha Rao", Amount: 2500, PaymentDate: time.Now(), PaymentMethod: models.MethodCash},
		},
		{
			name:  "cheque with reference",
			input: PaymentInput{Payee: "Asha Rao", Amount: 2500, PaymentDate: time.Now(), PaymentMethod: models.MethodCheque, ReferenceNumber: &ref},
		},
		{
			name:    "cheque without reference",
			input:   PaymentInput{Payee: "Asha Rao", Amount: 2500, PaymentDate: time.Now(), PaymentMethod: models.MethodCheque},
			wantErr: ErrReferenceRequired,
		},
		{
			name:    "upi with empty reference",
			input:   PaymentInput{Payee: "Asha Rao", Amount: 2500, PaymentDate: time.Now(), PaymentMethod: models.MethodUPI, ReferenceNumber: &empty},
			wantErr: ErrReferenceRequired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.input.validate()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
