package ledger

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pet-boarding-ledger/internal/domain/pricing"
	"pet-boarding-ledger/internal/domain/schedule"

	"github.com/go-chi/chi/v5"
)

// ---- care marks ----

type careMarkRequest struct {
	CatID string `json:"cat_id"`
	Date  string `json:"date"`
	Type  string `json:"type"`
	Note  string `json:"note"`
}

type careMarkResponse struct {
	ID        string    `json:"id"`
	CatID     string    `json:"cat_id"`
	CatName   string    `json:"cat_name"`
	Date      string    `json:"date"`
	Type      CareType  `json:"type"`
	TypeLabel string    `json:"type_label"`
	Icon      string    `json:"icon"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// saveCareMarkHandler godoc
// @Summary Crear/actualizar marca de cuidado
// @Description Marca un cuidado especial para un gato en un día. type: attention, medical, medicine, grooming.
// @Tags care-marks
// @Accept json
// @Produce json
// @Param id path string false "ID (solo en PUT)"
// @Param payload body careMarkRequest true "Marca de cuidado"
// @Success 201 {object} careMarkResponse
// @Failure 400 {string} string "invalid json / tipo o fecha inválidos"
// @Failure 404 {string} string "care mark not found"
// @Router /care-marks [post]
// @Router /care-marks/{id} [put]
func saveCareMarkHandler(svc *Service, update bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req careMarkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := CareMarkInput{CatID: req.CatID, Date: req.Date, Type: req.Type, Note: req.Note}
		status := http.StatusCreated
		if update {
			in.ID = chi.URLParam(r, "id")
			status = http.StatusOK
		}

		m, err := svc.SaveCareMark(r.Context(), in)
		if err != nil {
			writeServiceError(w, err, "care mark not found")
			return
		}

		snap, err := svc.Snapshot(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, status, toCareMarkResponse(snap, m))
	}
}

// listCareMarksHandler godoc
// @Summary Listar marcas de cuidado
// @Tags care-marks
// @Produce json
// @Param cat_id query string false "Filtra por gato"
// @Param date query string false "Filtra por día (YYYY-MM-DD)"
// @Success 200 {array} careMarkResponse
// @Router /care-marks [get]
func listCareMarksHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.Snapshot(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		catID := strings.TrimSpace(r.URL.Query().Get("cat_id"))
		date := strings.TrimSpace(r.URL.Query().Get("date"))
		if date != "" {
			key, ok := schedule.NormalizeKey(date)
			if !ok {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			date = key
		}

		out := make([]careMarkResponse, 0, len(snap.CareMarks))
		for _, m := range snap.CareMarks {
			if catID != "" && m.CatID != catID {
				continue
			}
			if date != "" && m.Date != date {
				continue
			}
			out = append(out, toCareMarkResponse(snap, m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getCareMarkHandler godoc
// @Summary Obtener marca de cuidado
// @Tags care-marks
// @Produce json
// @Param id path string true "ID de la marca"
// @Success 200 {object} careMarkResponse
// @Failure 404 {string} string "care mark not found"
// @Router /care-marks/{id} [get]
func getCareMarkHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.GetCareMark(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err, "care mark not found")
			return
		}
		snap, err := svc.Snapshot(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toCareMarkResponse(snap, m))
	}
}

func toCareMarkResponse(snap Snapshot, m CareMark) careMarkResponse {
	out := careMarkResponse{
		ID:        m.ID,
		CatID:     m.CatID,
		Date:      m.Date,
		Type:      m.Type,
		TypeLabel: m.Type.Label(),
		Icon:      m.Type.Icon(),
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if c, ok := snap.Cat(m.CatID); ok {
		out.CatName = c.Name
	}
	return out
}

// ---- stays ----

type stayRequest struct {
	CatID     string         `json:"cat_id"`
	Type      string         `json:"type"`
	Start     string         `json:"start"`
	End       string         `json:"end"`
	UnitPrice pricing.Amount `json:"unit_price"`

	// Marca de cuidado editada junto con la estadía. Sin date o type y con id: se borra.
	Care *stayCareRequest `json:"care,omitempty"`
}

type stayCareRequest struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Type string `json:"type"`
	Note string `json:"note"`
}

type stayResponse struct {
	ID        string    `json:"id"`
	CatID     string    `json:"cat_id"`
	CatName   string    `json:"cat_name"`
	Type      StayType  `json:"type"`
	TypeLabel string    `json:"type_label"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	UnitPrice float64   `json:"unit_price"`
	Days      int       `json:"days"`
	Fee       float64   `json:"fee"`
	FeeLabel  string    `json:"fee_label"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Care        *careMarkResponse `json:"care,omitempty"`
	CareRemoved string            `json:"care_removed,omitempty"`
}

// saveStayHandler godoc
// @Summary Crear/actualizar estadía
// @Description Registra una estadía. days y fee se calculan (fee = unit_price * days * (1 - descuento del dueño)). Opcionalmente crea, actualiza o borra la marca de cuidado asociada.
// @Tags stays
// @Accept json
// @Produce json
// @Param id path string false "ID (solo en PUT)"
// @Param payload body stayRequest true "Estadía; fechas en YYYY-MM-DD"
// @Success 201 {object} stayResponse
// @Failure 400 {string} string "invalid json / tipo o fechas inválidos / precio negativo"
// @Failure 404 {string} string "stay not found"
// @Router /stays [post]
// @Router /stays/{id} [put]
func saveStayHandler(svc *Service, money pricing.Formatter, update bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req stayRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := StayInput{
			CatID:     req.CatID,
			Type:      req.Type,
			Start:     req.Start,
			End:       req.End,
			UnitPrice: req.UnitPrice.Float64(),
		}
		if req.Care != nil {
			in.Care = &CareInput{ID: req.Care.ID, Date: req.Care.Date, Type: req.Care.Type, Note: req.Care.Note}
		}
		status := http.StatusCreated
		if update {
			in.ID = chi.URLParam(r, "id")
			status = http.StatusOK
		}

		saved, err := svc.SaveStay(r.Context(), in)
		if err != nil {
			writeServiceError(w, err, "stay not found")
			return
		}

		snap, err := svc.Snapshot(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		out := toStayResponse(snap, saved.Stay, saved.Care, money)
		out.CareRemoved = saved.CareRemoved
		writeJSON(w, status, out)
	}
}

// listStaysHandler godoc
// @Summary Listar estadías
// @Tags stays
// @Produce json
// @Param cat_id query string false "Filtra por gato"
// @Success 200 {array} stayResponse
// @Router /stays [get]
func listStaysHandler(svc *Service, money pricing.Formatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.Snapshot(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		catID := strings.TrimSpace(r.URL.Query().Get("cat_id"))
		out := make([]stayResponse, 0, len(snap.Stays))
		for _, s := range snap.Stays {
			if catID != "" && s.CatID != catID {
				continue
			}
			out = append(out, toStayResponse(snap, s, nil, money))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getStayHandler godoc
// @Summary Obtener estadía
// @Description Devuelve la estadía y, si existe, la marca de cuidado del mismo gato en el día de inicio (para precargar el formulario).
// @Tags stays
// @Produce json
// @Param id path string true "ID de la estadía"
// @Success 200 {object} stayResponse
// @Failure 404 {string} string "stay not found"
// @Router /stays/{id} [get]
func getStayHandler(svc *Service, money pricing.Formatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, care, err := svc.GetStay(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err, "stay not found")
			return
		}

		snap, err := svc.Snapshot(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toStayResponse(snap, st, care, money))
	}
}

func toStayResponse(snap Snapshot, s Stay, care *CareMark, money pricing.Formatter) stayResponse {
	out := stayResponse{
		ID:        s.ID,
		CatID:     s.CatID,
		Type:      s.Type,
		TypeLabel: s.Type.Label(),
		Start:     s.Start,
		End:       s.End,
		UnitPrice: s.UnitPrice,
		Days:      s.Days,
		Fee:       s.Fee,
		FeeLabel:  money.Format(s.Fee),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if c, ok := snap.Cat(s.CatID); ok {
		out.CatName = c.Name
	}
	if care != nil {
		cr := toCareMarkResponse(snap, *care)
		out.Care = &cr
	}
	return out
}

// ---- visits ----

type visitRequest struct {
	OwnerID     string         `json:"owner_id"`
	Start       string         `json:"start"`
	End         string         `json:"end"`
	Frequency   string         `json:"frequency"` // daily | alternate | custom
	CustomDates string         `json:"custom_dates"`
	UnitPrice   pricing.Amount `json:"unit_price"`
}

type visitResponse struct {
	ID             string             `json:"id"`
	OwnerID        string             `json:"owner_id"`
	OwnerName      string             `json:"owner_name"`
	Start          string             `json:"start"`
	End            string             `json:"end"`
	Frequency      schedule.Frequency `json:"frequency"`
	FrequencyLabel string             `json:"frequency_label"`
	CustomDates    string             `json:"custom_dates"`
	Dates          []string           `json:"dates"`
	UnitPrice      float64            `json:"unit_price"`
	Count          int                `json:"count"`
	Fee            float64            `json:"fee"`
	FeeLabel       string             `json:"fee_label"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// saveVisitHandler godoc
// @Summary Crear/actualizar visita a domicilio
// @Description Registra un plan de visitas. count se calcula según la frecuencia (daily, alternate o custom con custom_dates separadas por coma). Las visitas no llevan descuento.
// @Tags visits
// @Accept json
// @Produce json
// @Param id path string false "ID (solo en PUT)"
// @Param payload body visitRequest true "Plan de visitas"
// @Success 201 {object} visitResponse
// @Failure 400 {string} string "invalid json / frecuencia o fechas inválidas"
// @Failure 404 {string} string "visit not found"
// @Router /visits [post]
// @Router /visits/{id} [put]
func saveVisitHandler(svc *Service, money pricing.Formatter, update bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req visitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := VisitInput{
			OwnerID:     req.OwnerID,
			Start:       req.Start,
			End:         req.End,
			Frequency:   req.Frequency,
			CustomDates: req.CustomDates,
			UnitPrice:   req.UnitPrice.Float64(),
		}
		status := http.StatusCreated
		if update {
			in.ID = chi.URLParam(r, "id")
			status = http.StatusOK
		}

		v, err := svc.SaveVisit(r.Context(), in)
		if err != nil {
			writeServiceError(w, err, "visit not found")
			return
		}

		snap, err := svc.Snapshot(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, status, toVisitResponse(snap, v, money))
	}
}

// listVisitsHandler godoc
// @Summary Listar visitas
// @Tags visits
// @Produce json
// @Param owner_id query string false "Filtra por dueño"
// @Success 200 {array} visitResponse
// @Router /visits [get]
func listVisitsHandler(svc *Service, money pricing.Formatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.Snapshot(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		ownerID := strings.TrimSpace(r.URL.Query().Get("owner_id"))
		out := make([]visitResponse, 0, len(snap.Visits))
		for _, v := range snap.Visits {
			if ownerID != "" && v.OwnerID != ownerID {
				continue
			}
			out = append(out, toVisitResponse(snap, v, money))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getVisitHandler godoc
// @Summary Obtener visita
// @Tags visits
// @Produce json
// @Param id path string true "ID de la visita"
// @Success 200 {object} visitResponse
// @Failure 404 {string} string "visit not found"
// @Router /visits/{id} [get]
func getVisitHandler(svc *Service, money pricing.Formatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetVisit(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err, "visit not found")
			return
		}

		snap, err := svc.Snapshot(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toVisitResponse(snap, v, money))
	}
}

func toVisitResponse(snap Snapshot, v Visit, money pricing.Formatter) visitResponse {
	out := visitResponse{
		ID:             v.ID,
		OwnerID:        v.OwnerID,
		Start:          v.Start,
		End:            v.End,
		Frequency:      v.Frequency,
		FrequencyLabel: v.Frequency.Label(),
		CustomDates:    v.CustomDates,
		Dates:          schedule.ResolveDates(v.Recurrence()),
		UnitPrice:      v.UnitPrice,
		Count:          v.Count,
		Fee:            v.Fee,
		FeeLabel:       money.Format(v.Fee),
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
	if o, ok := snap.Owner(v.OwnerID); ok {
		out.OwnerName = o.Name
	}
	return out
}
