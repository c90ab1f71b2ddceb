package validation

import (
	"errors"
	"net/http"
	"testing"

	"github.com/quickbite/api/internal/errs"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name   string
		fields []errs.FieldError
		want   string
	}{
		{
			name:   "single violation",
			fields: []errs.FieldError{{Field: "name", Error: "is required"}},
			want:   "Validation error: name is required",
		},
		{
			name: "violations join in order",
			fields: []errs.FieldError{
				{Field: "name", Error: "is required"},
				{Field: "price", Error: "must be greater than 0"},
			},
			want: "Validation error: name is required, price must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.fields); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		if err := Extract(nil); err != nil {
			t.Errorf("Extract(nil) = %v", err)
		}
	})

	t.Run("custom errors become a 400", func(t *testing.T) {
		verrs := CustomValidationErrors{
			{Field: "category", Message: "must be one of: appetizer, main, dessert, beverage"},
		}

		err := Extract(verrs)
		var httpErr *errs.HTTPError
		if !errors.As(err, &httpErr) {
			t.Fatalf("expected *errs.HTTPError, got %T", err)
		}
		if httpErr.Status != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", httpErr.Status)
		}
		want := "Validation error: category must be one of: appetizer, main, dessert, beverage"
		if httpErr.Message != want {
			t.Errorf("message = %q, want %q", httpErr.Message, want)
		}
		if len(httpErr.Fields) != 1 || httpErr.Fields[0].Field != "category" {
			t.Errorf("fields = %+v", httpErr.Fields)
		}
	})

	t.Run("request-level errors pass through unchanged", func(t *testing.T) {
		original := errs.NewBadRequestError("Search term is required", nil)

		err := Extract(original)
		if err != error(original) {
			t.Errorf("Extract rewrapped the error: %v", err)
		}
	})
}
