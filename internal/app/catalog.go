package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/wsgate/internal/pkg/pkgerror"
)

type catalogEntry struct {
	Code     int    `json:"code"`
	Symbol   string `json:"symbol"`
	Status   int    `json:"status"`
	Template string `json:"template"`
}

type catalogResponse []catalogEntry

func (catalogResponse) Message() string {
	return "error catalogue"
}

// listErrors serves every registered kind in code order.
func listErrors(context.Context, *http.Request) (any, error) {
	resp := catalogResponse{}
	for _, kind := range pkgerror.Kinds() {
		if !pkgerror.Registered(kind) {
			continue
		}
		entry := pkgerror.Lookup(kind)
		resp = append(resp, catalogEntry{
			Code:     kind.Code(),
			Symbol:   kind.String(),
			Status:   entry.Status,
			Template: entry.Template,
		})
	}

	return resp, nil
}
