package handlers

import (
	"net/http"

	"github.com/akinalp/antren/pkg"
	"github.com/akinalp/antren/services"
	"github.com/akinalp/antren/validation"
)

// ExerciseHandler, herkese açık egzersiz listesini karşılar.
type ExerciseHandler struct {
	catalog services.CatalogService
}

func NewExerciseHandler(catalog services.CatalogService) *ExerciseHandler {
	return &ExerciseHandler{catalog: catalog}
}

// List — GET /exercises?page=&limit=&programID=&search=
func (h *ExerciseHandler) List(w http.ResponseWriter, r *http.Request) {
	rp := pkg.NewResponder(w, r)

	q, issues := validation.ParseListExercisesQuery(r.URL.Query())
	if issues != nil {
		rp.ValidationError(issues)
		return
	}

	listing, err := h.catalog.ListExercises(r.Context(), q)
	if err != nil {
		rp.FromError(err, "exercise.errors.list")
		return
	}

	rp.Success("exercise.list", pkg.SuccessOpts{
		Data: listing.Items,
		Meta: map[string]any{
			"page":       listing.Page,
			"totalPages": listing.TotalPages,
			"totalItems": listing.TotalItems,
		},
	})
}
