package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-pin-keeper/internal/app"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/utils"
)

// withHashCheck rejects messages whose HashSHA256 header does not match the
// HMAC of the body. Without a configured key every message passes.
func (h *Handler) withHashCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(io.LimitReader(r.Body, maxMessageSize))
		if err != nil {
			log.Err(err).Str("func", "*Handler.withHashCheck").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		signature := r.Header.Get(utils.HashHeader)
		if !h.hasher.Verify(body, signature) {
			log.Error().Str("func", "*Handler.withHashCheck").
				Str("hash from request", signature).
				Msg("hashes are not equal")
			http.Error(w, app.MsgInvalidHash, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
