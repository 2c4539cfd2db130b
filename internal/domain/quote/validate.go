package quote

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// fieldNames maps struct namespaces to the names callers know from the
// request payload.
var fieldNames = map[string]string{
	"Quotation.Number":        "quote_no",
	"Quotation.IssueDate":     "date",
	"Quotation.Currency":      "currency",
	"Quotation.Customer.Name": "customer.name",
}

// ValidationError reports required quotation fields that were missing.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field(s): %s", strings.Join(e.Fields, ", "))
}

// Validate checks the identity fields a quotation cannot be rendered
// without. Lines may be empty; nothing is defaulted here.
func (q Quotation) Validate() error {
	err := validate.Struct(q)
	if err == nil {
		return nil
	}
	verr, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]string, 0, len(verr))
	for _, fe := range verr {
		name, ok := fieldNames[fe.StructNamespace()]
		if !ok {
			name = strings.ToLower(fe.StructNamespace())
		}
		fields = append(fields, name)
	}
	return &ValidationError{Fields: fields}
}
