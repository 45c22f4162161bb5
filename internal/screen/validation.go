package screen

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/muurk/listbind/internal/path"
)

// Validate checks the document settings and returns every problem found,
// combined into one error. Each combined error is a validation DocumentError.
func (d *Document) Validate() error {
	var err error

	if d.Version != CurrentVersion {
		err = multierr.Append(err, NewValidationError(
			fmt.Sprintf("unsupported document version: %d (expected %d)", d.Version, CurrentVersion)))
	}

	err = multierr.Append(err, ValidatePath("status_path", d.StatusPath, true))
	err = multierr.Append(err, ValidatePath("value_path", d.ValuePath, false))
	err = multierr.Append(err, ValidateCapacity(d.Capacity))

	return err
}

// ValidatePath validates a dotted field path setting.
// Empty is only allowed when the setting is optional.
func ValidatePath(name, value string, required bool) error {
	if value == "" {
		if required {
			return NewValidationError(fmt.Sprintf("%s cannot be empty", name))
		}
		return nil
	}
	for _, seg := range path.Parse(value).Segments() {
		if !seg.IsIndex() && seg.KeyName() == "" {
			return NewValidationError(fmt.Sprintf("%s has an empty field: %q", name, value))
		}
	}
	return nil
}

// ValidateCapacity validates the cursor insert capacity.
// Zero disables inserts; negative values are rejected.
func ValidateCapacity(capacity int) error {
	if capacity < 0 {
		return NewValidationError(fmt.Sprintf("capacity must not be negative, got %d", capacity))
	}
	return nil
}

// ValidationErrors splits a combined validation error into its parts.
func ValidationErrors(err error) []error {
	return multierr.Errors(err)
}
