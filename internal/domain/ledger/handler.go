package ledger

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-boarding-ledger/internal/domain/pricing"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el CRUD de las cinco colecciones.
// DELETE devuelve el plan de borrado aplicado (incluye la cascada).
func RegisterRoutes(r chi.Router, svc *Service, money pricing.Formatter) {
	r.Route("/owners", func(or chi.Router) {
		or.Post("/", createOwnerHandler(svc))
		or.Get("/", listOwnersHandler(svc))
		or.Get("/{id}", getOwnerHandler(svc))
		or.Put("/{id}", updateOwnerHandler(svc))
		or.Delete("/{id}", deleteHandler(svc, KindOwner))
	})

	r.Route("/cats", func(cr chi.Router) {
		cr.Post("/", createCatHandler(svc))
		cr.Get("/", listCatsHandler(svc))
		cr.Get("/{id}", getCatHandler(svc))
		cr.Put("/{id}", updateCatHandler(svc))
		cr.Delete("/{id}", deleteHandler(svc, KindCat))
	})

	r.Route("/stays", func(sr chi.Router) {
		sr.Post("/", saveStayHandler(svc, money, false))
		sr.Get("/", listStaysHandler(svc, money))
		sr.Get("/{id}", getStayHandler(svc, money))
		sr.Put("/{id}", saveStayHandler(svc, money, true))
		sr.Delete("/{id}", deleteHandler(svc, KindStay))
	})

	r.Route("/visits", func(vr chi.Router) {
		vr.Post("/", saveVisitHandler(svc, money, false))
		vr.Get("/", listVisitsHandler(svc, money))
		vr.Get("/{id}", getVisitHandler(svc, money))
		vr.Put("/{id}", saveVisitHandler(svc, money, true))
		vr.Delete("/{id}", deleteHandler(svc, KindVisit))
	})

	r.Route("/care-marks", func(mr chi.Router) {
		mr.Post("/", saveCareMarkHandler(svc, false))
		mr.Get("/", listCareMarksHandler(svc))
		mr.Get("/{id}", getCareMarkHandler(svc))
		mr.Put("/{id}", saveCareMarkHandler(svc, true))
		mr.Delete("/{id}", deleteHandler(svc, KindCareMark))
	})
}

// ---- owners ----

type ownerRequest struct {
	Name            string         `json:"name"`
	Contact         string         `json:"contact"`
	DiscountPercent pricing.Amount `json:"discount_percent"`
	Note            string         `json:"note"`
}

type ownerResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Contact         string    `json:"contact"`
	DiscountPercent float64   `json:"discount_percent"`
	DiscountLabel   string    `json:"discount_label"`
	Note            string    `json:"note"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// createOwnerHandler godoc
// @Summary Crear dueño
// @Description Registra un dueño. discount_percent (0-100) se aplica a las estadías de sus gatos; acepta número o string.
// @Tags owners
// @Accept json
// @Produce json
// @Param payload body ownerRequest true "Datos del dueño"
// @Success 201 {object} ownerResponse
// @Failure 400 {string} string "invalid json / name requerido / descuento fuera de rango"
// @Router /owners [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ownerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.SaveOwner(r.Context(), OwnerInput{
			Name:            req.Name,
			Contact:         req.Contact,
			DiscountPercent: req.DiscountPercent.Float64(),
			Note:            req.Note,
		})
		if err != nil {
			writeServiceError(w, err, "owner not found")
			return
		}

		writeJSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

// listOwnersHandler godoc
// @Summary Listar dueños
// @Tags owners
// @Produce json
// @Success 200 {array} ownerResponse
// @Router /owners [get]
func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.Snapshot(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]ownerResponse, 0, len(snap.Owners))
		for _, o := range snap.Owners {
			out = append(out, toOwnerResponse(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getOwnerHandler godoc
// @Summary Obtener dueño
// @Tags owners
// @Produce json
// @Param id path string true "ID del dueño"
// @Success 200 {object} ownerResponse
// @Failure 404 {string} string "owner not found"
// @Router /owners/{id} [get]
func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.GetOwner(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err, "owner not found")
			return
		}
		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

// updateOwnerHandler godoc
// @Summary Actualizar dueño
// @Description Reemplaza los datos del dueño. Las estadías ya guardadas conservan su fee.
// @Tags owners
// @Accept json
// @Produce json
// @Param id path string true "ID del dueño"
// @Param payload body ownerRequest true "Datos del dueño"
// @Success 200 {object} ownerResponse
// @Failure 400 {string} string "invalid json / name requerido / descuento fuera de rango"
// @Failure 404 {string} string "owner not found"
// @Router /owners/{id} [put]
func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ownerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.SaveOwner(r.Context(), OwnerInput{
			ID:              chi.URLParam(r, "id"),
			Name:            req.Name,
			Contact:         req.Contact,
			DiscountPercent: req.DiscountPercent.Float64(),
			Note:            req.Note,
		})
		if err != nil {
			writeServiceError(w, err, "owner not found")
			return
		}
		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

func toOwnerResponse(o Owner) ownerResponse {
	return ownerResponse{
		ID:              o.ID,
		Name:            o.Name,
		Contact:         o.Contact,
		DiscountPercent: o.DiscountPercent,
		DiscountLabel:   DiscountLabel(o.DiscountPercent),
		Note:            o.Note,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// DiscountLabel muestra "10%" o "—" si no hay descuento.
func DiscountLabel(pct float64) string {
	if pct == 0 {
		return "—"
	}
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// ---- cats ----

type catRequest struct {
	Name    string `json:"name"`
	OwnerID string `json:"owner_id"`
	Note    string `json:"note"`
}

type catResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	OwnerName string    `json:"owner_name"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// createCatHandler godoc
// @Summary Crear gato
// @Description Registra un gato. owner_id es opcional y no se valida contra los dueños existentes.
// @Tags cats
// @Accept json
// @Produce json
// @Param payload body catRequest true "Datos del gato"
// @Success 201 {object} catResponse
// @Failure 400 {string} string "invalid json / name requerido"
// @Router /cats [post]
func createCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		saveCat(w, r, svc, "", http.StatusCreated)
	}
}

// updateCatHandler godoc
// @Summary Actualizar gato
// @Tags cats
// @Accept json
// @Produce json
// @Param id path string true "ID del gato"
// @Param payload body catRequest true "Datos del gato"
// @Success 200 {object} catResponse
// @Failure 400 {string} string "invalid json / name requerido"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{id} [put]
func updateCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		saveCat(w, r, svc, chi.URLParam(r, "id"), http.StatusOK)
	}
}

func saveCat(w http.ResponseWriter, r *http.Request, svc *Service, id string, status int) {
	var req catRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	c, err := svc.SaveCat(r.Context(), CatInput{
		ID:      id,
		Name:    req.Name,
		OwnerID: req.OwnerID,
		Note:    req.Note,
	})
	if err != nil {
		writeServiceError(w, err, "cat not found")
		return
	}

	snap, err := svc.Snapshot(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, status, toCatResponse(snap, c))
}

// listCatsHandler godoc
// @Summary Listar gatos
// @Tags cats
// @Produce json
// @Param owner_id query string false "Filtra por dueño"
// @Success 200 {array} catResponse
// @Router /cats [get]
func listCatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.Snapshot(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		ownerID := strings.TrimSpace(r.URL.Query().Get("owner_id"))
		out := make([]catResponse, 0, len(snap.Cats))
		for _, c := range snap.Cats {
			if ownerID != "" && c.OwnerID != ownerID {
				continue
			}
			out = append(out, toCatResponse(snap, c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getCatHandler godoc
// @Summary Obtener gato
// @Tags cats
// @Produce json
// @Param id path string true "ID del gato"
// @Success 200 {object} catResponse
// @Failure 404 {string} string "cat not found"
// @Router /cats/{id} [get]
func getCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetCat(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err, "cat not found")
			return
		}
		snap, err := svc.Snapshot(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toCatResponse(snap, c))
	}
}

func toCatResponse(snap Snapshot, c Cat) catResponse {
	out := catResponse{
		ID:        c.ID,
		Name:      c.Name,
		OwnerID:   c.OwnerID,
		Note:      c.Note,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if o, ok := snap.Owner(c.OwnerID); ok {
		out.OwnerName = o.Name
	}
	return out
}

// ---- delete ----

type deleteResponse struct {
	Deleted DeletePlan `json:"deleted"`
	Count   int        `json:"count"`
}

// deleteHandler godoc
// @Summary Borrar registro
// @Description Borra el registro. Borrar un dueño borra sus gatos y las estadías y marcas de esos gatos; borrar un gato borra sus estadías y marcas. Las visitas nunca se borran en cascada.
// @Tags records
// @Produce json
// @Param id path string true "ID del registro"
// @Success 200 {object} deleteResponse
// @Failure 404 {string} string "not found"
// @Router /owners/{id} [delete]
// @Router /cats/{id} [delete]
// @Router /stays/{id} [delete]
// @Router /visits/{id} [delete]
// @Router /care-marks/{id} [delete]
func deleteHandler(svc *Service, kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, err := svc.Delete(r.Context(), kind, chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err, string(kind)+" not found")
			return
		}
		writeJSON(w, http.StatusOK, deleteResponse{Deleted: plan, Count: plan.Count()})
	}
}

// writeServiceError traduce los errores del service a status HTTP.
func writeServiceError(w http.ResponseWriter, err error, notFound string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, notFound, http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
