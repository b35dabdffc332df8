package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/akinalp/antren/pkg"
	"github.com/akinalp/antren/services"
	"github.com/akinalp/antren/validation"
)

// AdminHandler, ADMIN rolüyle erişilen endpoint'leri karşılar: katalog
// yönetimi, program ilişkileri ve kullanıcı yönetimi.
type AdminHandler struct {
	catalog services.CatalogService
	users   services.UserService
}

func NewAdminHandler(catalog services.CatalogService, users services.UserService) *AdminHandler {
	return &AdminHandler{catalog: catalog, users: users}
}

// CreateExercise — POST /admin/exercises
func (h *AdminHandler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	rp := pkg.NewResponder(w, r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		rp.FromError(err, "exercise.errors.create")
		return
	}

	input, issues := validation.ParseExerciseBody(body)
	if issues != nil {
		rp.ValidationError(issues)
		return
	}

	ex, err := h.catalog.CreateExercise(r.Context(), input)
	if err != nil {
		rp.FromError(err, "exercise.errors.create")
		return
	}

	rp.Success("exercise.created", pkg.SuccessOpts{
		Status: http.StatusCreated,
		Params: map[string]any{"name": ex.Name},
		Data:   ex,
	})
}

// UpdateExercise — PUT /admin/exercises/{id}
func (h *AdminHandler) UpdateExercise(w http.ResponseWriter, r *http.Request) {
	rp := pkg.NewResponder(w, r)

	id, issues := validation.ParseIDParam(r.PathValue("id"))
	if issues != nil {
		rp.ValidationError(issues)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		rp.FromError(err, "exercise.errors.update")
		return
	}

	input, issues := validation.ParseExerciseBody(body)
	if issues != nil {
		rp.ValidationError(issues)
		return
	}

	ex, err := h.catalog.UpdateExercise(r.Context(), id, input)
	if err != nil {
		rp.FromError(err, "exercise.errors.update")
		return
	}

	rp.Success("exercise.updated", pkg.SuccessOpts{
		Params: map[string]any{"name": ex.Name},
		Data:   ex,
	})
}

// DeleteExercise — DELETE /admin/exercises/{id}
//
// Yanıt mesajı silinen egzersizin adını taşır, data sadece id döner.
func (h *AdminHandler) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	rp := pkg.NewResponder(w, r)

	id, issues := validation.ParseIDParam(r.PathValue("id"))
	if issues != nil {
		rp.ValidationError(issues)
		return
	}

	ex, err := h.catalog.DeleteExercise(r.Context(), id)
	if err != nil {
		rp.FromError(err, "exercise.errors.delete")
		return
	}

	rp.Success("exercise.deleted", pkg.SuccessOpts{
		Params: map[string]any{"name": ex.Name},
		Data:   map[string]any{"id": ex.ID},
	})
}

// AddExerciseToProgram — POST /admin/programs/{programId}/exercises/{exerciseId}
func (h *AdminHandler) AddExerciseToProgram(w http.ResponseWriter, r *http.Request) {
	rp := pkg.NewResponder(w, r)

	programID, exerciseID, issues := validation.ParseProgramExerciseParams(
		r.PathValue("programId"), r.PathValue("exerciseId"),
	)
	if issues != nil {
		rp.ValidationError(issues)
		return
	}

	ex, err := h.catalog.AddExerciseToProgram(r.Context(), programID, exerciseID)
	if err != nil {
		rp.FromError(err, "program.errors.addExercise")
		return
	}

	programIDNum, _ := strconv.ParseInt(programID, 10, 64)

	rp.Success("program.exerciseAdded", pkg.SuccessOpts{
		Data: map[string]any{
			"programId": programIDNum,
			"exercise":  ex,
		},
	})
}

// RemoveExerciseFromProgram — DELETE /admin/programs/{programId}/exercises/{exerciseId}
func (h *AdminHandler) RemoveExerciseFromProgram(w http.ResponseWriter, r *http.Request) {
	rp := pkg.NewResponder(w, r)

	programID, exerciseID, issues := validation.ParseProgramExerciseParams(
		r.PathValue("programId"), r.PathValue("exerciseId"),
	)
	if issues != nil {
		rp.ValidationError(issues)
		return
	}

	if err := h.catalog.RemoveExerciseFromProgram(r.Context(), programID, exerciseID); err != nil {
		rp.FromError(err, "program.errors.removeExercise")
		return
	}

	programIDNum, _ := strconv.ParseInt(programID, 10, 64)
	exerciseIDNum, _ := strconv.ParseInt(exerciseID, 10, 64)

	rp.Success("program.exerciseRemoved", pkg.SuccessOpts{
		Data: map[string]any{
			"programId":  programIDNum,
			"exerciseId": exerciseIDNum,
		},
	})
}

// ListUsers — GET /admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	rp := pkg.NewResponder(w, r)

	users, err := h.users.ListAll(r.Context())
	if err != nil {
		rp.FromError(err, "user.errors.loadAll")
		return
	}

	rp.Success("user.list", pkg.SuccessOpts{Data: users})
}

// GetUser — GET /admin/users/{id}
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	rp := pkg.NewResponder(w, r)

	id, issues := validation.ParseIDParam(r.PathValue("id"))
	if issues != nil {
		rp.ValidationError(issues)
		return
	}

	user, err := h.users.Detail(r.Context(), id)
	if err != nil {
		rp.FromError(err, "user.errors.loadOne")
		return
	}

	rp.Success("user.detail", pkg.SuccessOpts{Data: user})
}

// UpdateUser — PUT /admin/users/{id}
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	rp := pkg.NewResponder(w, r)

	id, issues := validation.ParseIDParam(r.PathValue("id"))
	if issues != nil {
		rp.ValidationError(issues)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		rp.FromError(err, "user.errors.update")
		return
	}

	update, issues := validation.ParseUpdateUserBody(body)
	if issues != nil {
		rp.ValidationError(issues)
		return
	}

	user, err := h.users.Update(r.Context(), id, update)
	if err != nil {
		rp.FromError(err, "user.errors.update")
		return
	}

	rp.Success("user.updated", pkg.SuccessOpts{Data: user})
}
