package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"refstats/internal/referral"

	"github.com/jellydator/validation"
)

var ErrMalformed error = errors.New("malformed code registry")

type entry struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func (e entry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Name, validation.Required),
		validation.Field(&e.Code, validation.Required),
	)
}

// LoadFile reads a JSON array of {name, code} objects. Entry order is preserved.
func LoadFile(path string) ([]referral.CodeEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates registry JSON.
func Parse(data []byte) ([]referral.CodeEntry, error) {
	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	codes := make([]referral.CodeEntry, 0, len(entries))
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrMalformed, i, err)
		}
		codes = append(codes, referral.CodeEntry{
			DisplayName: e.Name,
			Code:        e.Code,
		})
	}

	return codes, nil
}
