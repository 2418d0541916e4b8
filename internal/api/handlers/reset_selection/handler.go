package reset_selection

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
)

const msgInvalidSessionID = "некорректный ID сессии выбора"

type Handler struct {
	useCase ResetSelectionUseCase
	logger  Logger
}

func NewHandler(useCase ResetSelectionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/selections/{sessionId}
// Сброс выбора идемпотентен: удаление несуществующей сессии тоже 204.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil || sessionID == uuid.Nil {
		h.logger.Warn("DELETE /selections/{id} - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	if err := h.useCase.Reset(r.Context(), sessionID); err != nil {
		h.logger.Error("DELETE /selections/{id} - Failed to reset selection: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /selections/{id} - Selection reset: session_id=%s", sessionID)
	handlers.RespondNoContent(w)
}
