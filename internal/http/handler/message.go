package handler

import "refstats/internal/core"

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`      // short message for humans
	Data         any    `json:"data,omitempty"`         // actual payload (can be nil)
	Error        string `json:"error,omitempty"`        // error detail (if any)
	NeedsRefresh bool   `json:"needsRefresh,omitempty"` // no snapshot yet
}

// DataResponse is the body of a successful data request. Data is a list of rows or
// of transactions depending on Mode.
type DataResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Mode    string `json:"mode"`
	core.RunStats
	Cached     bool                `json:"cached"`
	Duplicates map[string][]string `json:"duplicates,omitempty"`
}
