package payload

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/jellydator/validation"
)

type QueryValidator struct{}

// DecodeAndValidateDataRequest reads the data request from the URL query and validates it.
func (qv QueryValidator) DecodeAndValidateDataRequest(r *http.Request) (DataRequest, error) {
	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		return DataRequest{}, fmt.Errorf("parse query parameters: %w", err)
	}

	req, err := NewDataRequest(values)
	if err != nil {
		return DataRequest{}, fmt.Errorf("decoding query: %w", err)
	}

	if err := qv.validatePayload(req); err != nil {
		return DataRequest{}, err
	}
	return req, nil
}

func (qv QueryValidator) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
