package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-pin-keeper/internal/app"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/router"
	"github.com/MKhiriev/go-pin-keeper/internal/utils"
	"github.com/MKhiriev/go-pin-keeper/models"
)

const maxMessageSize = 1 << 20

func (h *Handler) messages(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxMessageSize))
	if err != nil {
		log.Err(err).Str("func", "*Handler.messages").Msg("failed to read request body")
		http.Error(w, app.MsgInvalidMessage, http.StatusBadRequest)
		return
	}

	cmd, err := router.Decode(body)
	if errors.Is(err, router.ErrUnknownMessage) {
		log.Warn().Err(err).Str("func", "*Handler.messages").Msg("ignoring unknown message")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.messages").Msg("failed to decode message")
		http.Error(w, app.MsgInvalidMessage, http.StatusBadRequest)
		return
	}

	log.Debug().Str("func", "*Handler.messages").Str("type", cmd.Type()).Msg("dispatching message")

	resp, err := h.dispatcher.Dispatch(r.Context(), cmd)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.messages").
			Str("type", cmd.Type()).
			Int("status", status).
			Msg("message failed")

		if resp.Error == "" {
			resp.Error = errorMessage(err, status)
		}
		utils.WriteJSON(w, resp, status)
		return
	}

	if isEmpty(resp) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func isEmpty(resp models.MessageResponse) bool {
	return resp.Tags == nil && resp.LoggedIn == nil && resp.Sync == nil && resp.Auth == "" && resp.Error == ""
}

// errorMessage hides local failures behind a generic message. Upstream
// failures keep their text.
func errorMessage(err error, status int) string {
	switch status {
	case http.StatusInternalServerError:
		return app.MsgInternalError
	default:
		return err.Error()
	}
}
