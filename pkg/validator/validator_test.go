package validator

import (
	"testing"

	"github.com/google/uuid"
)

type sample struct {
	Name   string    `validate:"required"`
	Kind   string    `validate:"required,oneof=income expense tax"`
	Amount float64   `validate:"gte=0"`
	Ref    uuid.UUID `validate:"uuid_required"`
}

func TestValidateStructOK(t *testing.T) {
	s := sample{Name: "Kas", Kind: "income", Amount: 1000, Ref: uuid.New()}
	if errs := ValidateStruct(s); len(errs) != 0 {
		t.Errorf("unexpected errors: %+v", errs)
	}
}

func TestValidateStructReportsFirstFailure(t *testing.T) {
	s := sample{Name: "", Kind: "transfer", Amount: -1, Ref: uuid.Nil}
	errs := ValidateStruct(s)
	if len(errs) != 4 {
		t.Fatalf("errors = %d, want 4", len(errs))
	}
	if errs[0].FailedField != "sample.Name" || errs[0].Tag != "required" {
		t.Errorf("first error = %+v", errs[0])
	}
}

func TestUUIDRequiredRule(t *testing.T) {
	s := sample{Name: "Kas", Kind: "tax", Amount: 0, Ref: uuid.Nil}
	errs := ValidateStruct(s)
	if len(errs) != 1 {
		t.Fatalf("errors = %d, want 1", len(errs))
	}
	if errs[0].Tag != "uuid_required" {
		t.Errorf("tag = %q, want uuid_required", errs[0].Tag)
	}
}
