package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/internal/store"
	"github.com/MKhiriev/user-management-api/internal/utils"
	"github.com/MKhiriev/user-management-api/internal/validators"
	"github.com/MKhiriev/user-management-api/models"
)

// listUsers handles GET /api/users. The optional query parameters
// "department" and "isActive" narrow the result; both absent returns every
// user. Results are served through the read-through list cache.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter, err := filterFromQuery(r)
	if err != nil {
		log.Warn().Err(err).Msg("invalid list filter")
		h.writeAPIError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	users, err := h.services.UserService.ListUsers(r.Context(), filter)
	if err != nil {
		panic(err)
	}

	if _, err := utils.WriteJSON(w, users, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing user list")
	}
}

// getUser handles GET /api/users/{id}.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID := userIDFromPath(r)

	foundUser, err := h.services.UserService.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			http.Error(w, store.ErrUserNotFound.Error(), http.StatusNotFound)
			return
		}
		panic(err)
	}

	if _, err := utils.WriteJSON(w, foundUser, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing user")
	}
}

// createUser handles POST /api/users. A valid body yields 201 with the
// persisted record and a Location header pointing at its canonical URL.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var input models.UserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.createUser").Msg("Invalid JSON was passed")
		h.writeAPIError(w, r, http.StatusBadRequest, "Invalid JSON was passed", nil)
		return
	}

	if violations := validators.ValidateUser(input); len(violations) > 0 {
		log.Warn().Int("violations", len(violations)).Msg("user input failed validation")
		h.writeAPIError(w, r, http.StatusBadRequest, "Validation failed", violations)
		return
	}

	createdUser, err := h.services.UserService.CreateUser(r.Context(), input)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			http.Error(w, store.ErrEmailAlreadyExists.Error(), http.StatusConflict)
			return
		}
		panic(err)
	}

	w.Header().Set("Location", fmt.Sprintf("/api/users/%d", createdUser.UserID))
	if _, err := utils.WriteJSON(w, createdUser, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing created user")
	}
}

// updateUser handles PUT /api/users/{id}. All mutable fields are replaced;
// input is validated the same way as on create. A successful update yields
// 204 with no body.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID := userIDFromPath(r)

	var input models.UserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.updateUser").Msg("Invalid JSON was passed")
		h.writeAPIError(w, r, http.StatusBadRequest, "Invalid JSON was passed", nil)
		return
	}

	if violations := validators.ValidateUser(input); len(violations) > 0 {
		log.Warn().Int("violations", len(violations)).Msg("user input failed validation")
		h.writeAPIError(w, r, http.StatusBadRequest, "Validation failed", violations)
		return
	}

	if _, err := h.services.UserService.UpdateUser(r.Context(), userID, input); err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			http.Error(w, store.ErrUserNotFound.Error(), http.StatusNotFound)
		case errors.Is(err, store.ErrEmailAlreadyExists):
			http.Error(w, store.ErrEmailAlreadyExists.Error(), http.StatusConflict)
		default:
			panic(err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteUser handles DELETE /api/users/{id}.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromPath(r)

	if err := h.services.UserService.DeleteUser(r.Context(), userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			http.Error(w, store.ErrUserNotFound.Error(), http.StatusNotFound)
			return
		}
		panic(err)
	}

	w.WriteHeader(http.StatusNoContent)
}

// userIDFromPath reads the {id} route parameter. A non-numeric identifier is
// a malformed argument: the fault is raised to the exception boundary, which
// turns it into a 400 carrying this message.
func userIDFromPath(r *http.Request) int64 {
	raw := chi.URLParam(r, "id")

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		panic(fmt.Errorf("%w: user id must be an integer, got %q", ErrMalformedArgument, raw))
	}

	return userID
}

// filterFromQuery builds the list filter from the request's query string.
// Absent parameters stay nil so the filter distinguishes omission from an
// explicit value.
func filterFromQuery(r *http.Request) (models.UserFilter, error) {
	var filter models.UserFilter

	if department := r.URL.Query().Get("department"); department != "" {
		filter.Department = &department
	}

	if rawActive := r.URL.Query().Get("isActive"); rawActive != "" {
		isActive, err := strconv.ParseBool(rawActive)
		if err != nil {
			return models.UserFilter{}, fmt.Errorf("isActive must be a boolean, got %q", rawActive)
		}
		filter.IsActive = &isActive
	}

	return filter, nil
}

// writeAPIError emits the standard JSON error body stamped with the request
// identifier and the current UTC time.
func (h *Handler) writeAPIError(w http.ResponseWriter, r *http.Request, status int, message string, violations []models.Violation) {
	apiError := models.APIError{
		StatusCode: status,
		Message:    message,
		RequestID:  utils.GetRequestIDFromContext(r.Context()),
		Timestamp:  time.Now().UTC(),
		Violations: violations,
	}

	if _, err := utils.WriteJSON(w, apiError, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}
