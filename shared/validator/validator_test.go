package validator_test

import (
	"resthouse/shared/validator"
	"strings"
	"testing"
)

// Fixture mirroring a guest-facing booking request
type guestRequest struct {
	Name   string `validate:"required" json:"name"`
	Email  string `validate:"required,email" json:"email"`
	Guests int    `validate:"gte=1,lte=10" json:"guests"`
	Status string `validate:"oneof=confirmed pending cancelled" json:"status"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        interface{}
		expectError bool
	}{
		{
			name: "valid struct",
			data: &guestRequest{
				Name:   "Jane Doe",
				Email:  "jane@example.com",
				Guests: 2,
				Status: "confirmed",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &guestRequest{
				Email:  "jane@example.com",
				Guests: 2,
				Status: "confirmed",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &guestRequest{
				Name:   "Jane Doe",
				Email:  "invalid-email",
				Guests: 2,
				Status: "confirmed",
			},
			expectError: true,
		},
		{
			name: "guests above capacity",
			data: &guestRequest{
				Name:   "Jane Doe",
				Email:  "jane@example.com",
				Guests: 15,
				Status: "confirmed",
			},
			expectError: true,
		},
		{
			name: "unknown status",
			data: &guestRequest{
				Name:   "Jane Doe",
				Email:  "jane@example.com",
				Guests: 2,
				Status: "checked-in",
			},
			expectError: true,
		},
		{
			name: "zero guests",
			data: &guestRequest{
				Name:   "Jane Doe",
				Email:  "jane@example.com",
				Guests: 0,
				Status: "confirmed",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct[guestRequest](tt.data.(*guestRequest))

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "Deluxe",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "guest@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "invalid-email",
			tag:         "email",
			expectError: true,
		},
		{
			name:        "valid number in range",
			field:       2,
			tag:         "gte=1,lte=10",
			expectError: false,
		},
		{
			name:        "number out of range",
			field:       15,
			tag:         "gte=1,lte=10",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "pending",
			tag:         "oneof=confirmed pending cancelled",
			expectError: false,
		},
		{
			name:        "invalid oneof",
			field:       "checked-in",
			tag:         "oneof=confirmed pending cancelled",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"Jane Doe","email":"jane@example.com","guests":2,"status":"confirmed"}`,
			expectError: false,
		},
		{
			name:        "invalid JSON",
			jsonBody:    `{"name":"Jane Doe","email":"invalid-email","guests":2,"status":"confirmed"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"Jane Doe","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data guestRequest
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

// Test custom validation messages
func TestValidationMessages(t *testing.T) {
	data := &guestRequest{}
	err := validator.ValidateStruct[guestRequest](data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	// Check that error message contains field name and is descriptive
	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}

// Test validation error handling
func TestValidationErrorHandling(t *testing.T) {
	// Test with multiple validation errors
	data := &guestRequest{
		Name:   "",           // required violation
		Email:  "invalid",    // email violation
		Guests: 0,            // gte violation
		Status: "checked-in", // oneof violation
	}

	err := validator.ValidateStruct[guestRequest](data)
	if err == nil {
		t.Fatal("expected validation error")
	}

	// The error should be descriptive and contain information about the failure
	errorMsg := err.Error()
	if errorMsg == "" {
		t.Error("expected non-empty error message")
	}

	t.Logf("Error message: %s", errorMsg)
}

// Test that the validator package initializes correctly
func TestValidatorInitialization(t *testing.T) {
	// Validate a basic struct without panic; indirectly checks init()
	data := &guestRequest{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Guests: 2,
		Status: "confirmed",
	}

	err := validator.ValidateStruct[guestRequest](data)
	if err != nil {
		t.Errorf("expected no validation error for valid struct, got: %v", err)
	}
}
