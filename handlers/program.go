package handlers

import (
	"net/http"

	"github.com/akinalp/antren/pkg"
	"github.com/akinalp/antren/services"
)

// ProgramHandler, herkese açık program listesini karşılar.
type ProgramHandler struct {
	catalog services.CatalogService
}

func NewProgramHandler(catalog services.CatalogService) *ProgramHandler {
	return &ProgramHandler{catalog: catalog}
}

// List — GET /programs
func (h *ProgramHandler) List(w http.ResponseWriter, r *http.Request) {
	rp := pkg.NewResponder(w, r)

	programs, err := h.catalog.ListPrograms(r.Context())
	if err != nil {
		rp.FromError(err, "program.errors.list")
		return
	}

	rp.Success("program.list", pkg.SuccessOpts{Data: programs})
}
