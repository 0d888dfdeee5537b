// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package validation validates API request structs with go-playground/validator v10.
//
// A single validator instance is shared process-wide so struct metadata is
// parsed once. Field names in errors come from the `query` (or `json`) tag,
// so messages name the parameter the client actually sent.
//
// Besides the built-in tags, "notblank" rejects strings that are empty after
// trimming whitespace.
//
//	type SuggestRequest struct {
//	    Prefix string `query:"prefix" validate:"notblank,max=200"`
//	    Limit  int    `query:"limit" validate:"gte=0,lte=50"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
package validation
