package payload

import (
	"fmt"
	"net/url"
	"refstats/internal/aggregate"
	"strconv"
	"strings"

	"github.com/jellydator/validation"
)

const (
	ModeAggregated = "aggregated"
	ModeDetailed   = "detailed"

	maxSearchLength = 256
)

// DataRequest is the query string of a data request.
type DataRequest struct {
	Mode       string
	Search     string
	Sort       string
	Direction  string
	Duplicates bool
}

// NewDataRequest reads a DataRequest from query values. A missing mode means
// aggregated and a missing direction means descending.
func NewDataRequest(values url.Values) (DataRequest, error) {
	req := DataRequest{
		Mode:      strings.TrimSpace(values.Get("mode")),
		Search:    values.Get("search"),
		Sort:      strings.TrimSpace(values.Get("sort")),
		Direction: strings.ToLower(strings.TrimSpace(values.Get("direction"))),
	}

	if req.Mode == "" {
		req.Mode = ModeAggregated
	}
	if req.Direction == "" {
		req.Direction = string(aggregate.Desc)
	}

	if raw := values.Get("duplicates"); raw != "" {
		duplicates, err := strconv.ParseBool(raw)
		if err != nil {
			return DataRequest{}, fmt.Errorf("parse duplicates flag: %w", err)
		}
		req.Duplicates = duplicates
	}

	return req, nil
}

func (d DataRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Mode, validation.Required, validation.In(ModeAggregated, ModeDetailed)),
		validation.Field(&d.Direction, validation.In(string(aggregate.Asc), string(aggregate.Desc))),
		validation.Field(&d.Search, validation.RuneLength(0, maxSearchLength)),
		validation.Field(&d.Sort,
			validation.When(d.Mode == ModeDetailed, validation.In(transactionSortFields()...)).
				Else(validation.In(rowSortFields()...)),
		),
	)
}

func (d DataRequest) ToQuery() aggregate.Query {
	return aggregate.Query{
		Search:    d.Search,
		SortField: d.Sort,
		Direction: aggregate.Direction(d.Direction),
	}
}

func rowSortFields() []any {
	fields := make([]any, len(aggregate.RowSortFields))
	for i, f := range aggregate.RowSortFields {
		fields[i] = string(f)
	}
	return fields
}

func transactionSortFields() []any {
	fields := make([]any, len(aggregate.TransactionSortFields))
	for i, f := range aggregate.TransactionSortFields {
		fields[i] = string(f)
	}
	return fields
}
