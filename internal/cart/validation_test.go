package cart

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		stock      int
		inCart     int
		requested  int
		wantValid  bool
		wantType   ValidationErrorType
		wantMax    int
	}{
		{
			name:      "fits exactly",
			stock:     5,
			inCart:    0,
			requested: 5,
			wantValid: true,
			wantMax:   5,
		},
		{
			name:      "fits with room",
			stock:     10,
			inCart:    3,
			requested: 2,
			wantValid: true,
			wantMax:   7,
		},
		{
			name:      "exceeds stock from empty cart",
			stock:     5,
			inCart:    0,
			requested: 6,
			wantType:  ErrInsufficientStock,
			wantMax:   5,
		},
		{
			name:      "exceeds stock additively",
			stock:     5,
			inCart:    4,
			requested: 2,
			wantType:  ErrInsufficientStock,
			wantMax:   1,
		},
		{
			name:      "out of stock",
			stock:     0,
			inCart:    0,
			requested: 1,
			wantType:  ErrOutOfStock,
			wantMax:   0,
		},
		{
			name:      "zero quantity",
			stock:     5,
			inCart:    0,
			requested: 0,
			wantType:  ErrInvalidQuantity,
			wantMax:   5,
		},
		{
			name:      "negative quantity",
			stock:     5,
			inCart:    2,
			requested: -1,
			wantType:  ErrInvalidQuantity,
			wantMax:   3,
		},
		{
			name:      "invalid quantity beats out of stock",
			stock:     0,
			inCart:    0,
			requested: 0,
			wantType:  ErrInvalidQuantity,
			wantMax:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.stock, tt.inCart, tt.requested)
			if got.IsValid != tt.wantValid {
				t.Fatalf("IsValid = %v, want %v", got.IsValid, tt.wantValid)
			}
			if got.MaxAllowedQuantity != tt.wantMax {
				t.Errorf("MaxAllowedQuantity = %d, want %d", got.MaxAllowedQuantity, tt.wantMax)
			}
			if tt.wantValid {
				if got.Error != nil {
					t.Errorf("Error = %+v, want nil", got.Error)
				}
				return
			}
			if got.Error == nil {
				t.Fatal("Error = nil, want validation error")
			}
			if got.Error.Type != tt.wantType {
				t.Errorf("Error.Type = %q, want %q", got.Error.Type, tt.wantType)
			}
			if got.Error.CurrentStock != tt.stock && tt.wantType != ErrOutOfStock {
				t.Errorf("Error.CurrentStock = %d, want %d", got.Error.CurrentStock, tt.stock)
			}
		})
	}
}

func TestValidateInsufficientStockCarriesCartQuantity(t *testing.T) {
	got := Validate(5, 4, 2)
	if got.Error == nil || got.Error.Type != ErrInsufficientStock {
		t.Fatalf("expected insufficient_stock, got %+v", got)
	}
	if got.Error.CurrentCartQuantity != 4 {
		t.Errorf("CurrentCartQuantity = %d, want 4", got.Error.CurrentCartQuantity)
	}
	if got.Error.RequestedQuantity != 2 {
		t.Errorf("RequestedQuantity = %d, want 2", got.Error.RequestedQuantity)
	}
}
