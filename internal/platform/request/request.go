// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/casting/internal/platform/apperr"
	"github.com/taibuivan/casting/internal/platform/validate"
)

// MaxBodyBytes bounds the size of a decoded request body.
const MaxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body as a JSON object.

Numbers are kept as [json.Number] so integer rules can tell 25 from 25.5
and from "25".

Parameters:
  - request: *http.Request

Returns:
  - validate.Input: The decoded top-level keys
  - error: apperr.BadRequest if the body is missing, malformed, or not an object
*/
func DecodeJSON(request *http.Request) (validate.Input, error) {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, request.Body, MaxBodyBytes))
	decoder.UseNumber()

	var input validate.Input
	if err := decoder.Decode(&input); err != nil || input == nil {
		return nil, apperr.BadRequest()
	}
	return input, nil
}

/*
ID parses the integer "id" URL parameter.

Returns:
  - int64: The parsed id
  - error: apperr.NotFound(entity) if the parameter is not a valid id
*/
func ID(request *http.Request, entity string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(request, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.NotFound(entity)
	}
	return id, nil
}
