package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/akinalp/antren/pkg"
	"github.com/akinalp/antren/services"
	"github.com/akinalp/antren/validation"
)

// UserHandler, USER rolüyle erişilen endpoint'leri karşılar: kullanıcı
// listesi, profil ve egzersiz takip akışları.
type UserHandler struct {
	users    services.UserService
	tracking services.TrackingService
}

func NewUserHandler(users services.UserService, tracking services.TrackingService) *UserHandler {
	return &UserHandler{users: users, tracking: tracking}
}

// ListBasic — GET /users/all
func (h *UserHandler) ListBasic(w http.ResponseWriter, r *http.Request) {
	rp := pkg.NewResponder(w, r)

	list, err := h.users.ListBasic(r.Context())
	if err != nil {
		rp.FromError(err, "user.errors.loadAll")
		return
	}

	rp.Success("user.basicList", pkg.SuccessOpts{Data: list})
}

// Profile — GET /users/profile
//
// Kimlik context'ten gelir; istemci kimin profilini istediğini SÖYLEYEMEZ.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	rp := pkg.NewResponder(w, r)

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		pkg.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := h.users.Profile(r.Context(), principal.UserID)
	if err != nil {
		rp.FromError(err, "user.errors.loadProfile")
		return
	}

	rp.Success("user.profileLoaded", pkg.SuccessOpts{Data: profile})
}

// Track — POST /users/track/{exerciseId}
func (h *UserHandler) Track(w http.ResponseWriter, r *http.Request) {
	rp := pkg.NewResponder(w, r)

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		pkg.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	exerciseID, issues := validation.ParseExerciseIDParam(r.PathValue("exerciseId"))
	if issues != nil {
		rp.ValidationError(issues)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		rp.FromError(err, "exercise.errors.track")
		return
	}

	input, issues := validation.ParseTrackBody(body)
	if issues != nil {
		rp.ValidationError(issues)
		return
	}

	completed, err := h.tracking.Track(r.Context(), principal.UserID, exerciseID, input)
	if err != nil {
		rp.FromError(err, "exercise.errors.track")
		return
	}

	rp.Success("exercise.tracked", pkg.SuccessOpts{
		Status: http.StatusCreated,
		Data:   completed,
	})
}

// Completed — GET /users/completed
func (h *UserHandler) Completed(w http.ResponseWriter, r *http.Request) {
	rp := pkg.NewResponder(w, r)

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		pkg.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	list, err := h.tracking.Completed(r.Context(), principal.UserID)
	if err != nil {
		rp.FromError(err, "exercise.errors.loadCompleted")
		return
	}

	rp.Success("exercise.completedList", pkg.SuccessOpts{Data: list})
}

// RemoveCompleted — DELETE /users/completed/{completedExerciseId}
func (h *UserHandler) RemoveCompleted(w http.ResponseWriter, r *http.Request) {
	rp := pkg.NewResponder(w, r)

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		pkg.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	completedID, issues := validation.ParseCompletedIDParam(r.PathValue("completedExerciseId"))
	if issues != nil {
		rp.ValidationError(issues)
		return
	}

	if err := h.tracking.Remove(r.Context(), principal.UserID, completedID); err != nil {
		rp.FromError(err, "exercise.errors.removeTracked")
		return
	}

	// Id doğrulamadan geçti (^\d+$) — parse hatası mümkün değil.
	idNum, _ := strconv.ParseInt(completedID, 10, 64)

	rp.Success("exercise.trackedRemoved", pkg.SuccessOpts{
		Data: map[string]any{"id": idNum},
	})
}
