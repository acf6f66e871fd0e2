package es

import (
	"errors"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

func isConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

func isNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

func hasStatus(err error, status int) bool {
	var esErr *types.ElasticsearchError
	return errors.As(err, &esErr) && esErr.Status == status
}
