// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-fit-keeper/internal/app"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
)

// JSON fields of upload bodies whose content is covered by the "hash" field.
const (
	uploadDaysField   = "days"
	uploadSplitsField = "splits"
)

// uploadHashing verifies that the "hash" field of an upload body is the
// hex-encoded HMAC of the raw JSON value stored under payloadField. The body
// is restored for the next handler. Verification is skipped when the server
// has no hash key.
func (h *Handler) uploadHashing(payloadField string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !h.verifyHashes {
				next.ServeHTTP(w, r)
				return
			}

			log := logger.FromRequest(r)

			body, err := io.ReadAll(r.Body)
			if err != nil {
				log.Err(err).Str("func", "*Handler.uploadHashing").Msg("failed to read request body")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			var fields map[string]json.RawMessage
			if err := json.Unmarshal(body, &fields); err != nil {
				log.Err(err).Str("func", "*Handler.uploadHashing").Msg("failed to decode JSON")
				http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
				return
			}

			var hashFromRequest string
			if raw, ok := fields["hash"]; ok {
				if err := json.Unmarshal(raw, &hashFromRequest); err != nil {
					http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
					return
				}
			}

			hashedBody := hex.EncodeToString(utils.Hash(fields[payloadField]))
			if hashedBody != hashFromRequest {
				log.Error().Str("func", "*Handler.uploadHashing").
					Str("hash from request", hashFromRequest).
					Str("hashed body", hashedBody).
					Msg("hashes are not equal")
				http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
				return
			}

			log.Debug().Str("func", "*Handler.uploadHashing").Str("field", payloadField).Msg("hashes are equal")

			next.ServeHTTP(w, r)
		})
	}
}
