package forms

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"child-validations/internal/domain/subjects"
	"child-validations/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/forms", listFormsHandler(svc))
	r.Post("/forms/{formName}/validate", validateFormHandler(svc))

	r.Get("/subjects/{subjectIdentifier}/consents", consentHistoryHandler(svc))
	r.Get("/subjects/{subjectIdentifier}/consents/latest", latestConsentHandler(svc))
}

// validateFormRequest es el cleaned_data del formulario.
type validateFormRequest struct {
	SubjectIdentifier string `json:"subject_identifier"`
	ChildVisitID      string `json:"child_visit_id"`
	ReportDatetime    string `json:"report_datetime"` // RFC3339, opcional
	OffstudyDate      string `json:"offstudy_date"`   // YYYY-MM-DD, opcional
	InfantIdentifier  string `json:"infant_identifier"`
}

type validateFormResponse struct {
	ValidationID string              `json:"validation_id"`
	Form         string              `json:"form"`
	Valid        bool                `json:"valid"`
	Kind         string              `json:"kind,omitempty"`
	Errors       map[string][]string `json:"errors,omitempty"`
}

type formResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type consentResponse struct {
	ID                  string    `json:"id"`
	SubjectIdentifier   string    `json:"subject_identifier"`
	ScreeningIdentifier string    `json:"screening_identifier"`
	ConsentDatetime     time.Time `json:"consent_datetime"`
}

// listFormsHandler godoc
// @Summary Listar formularios
// @Description Formularios con reglas de validación registradas.
// @Tags forms
// @Produce json
// @Success 200 {array} formResponse
// @Router /forms [get]
func listFormsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defs := svc.Forms()
		out := make([]formResponse, 0, len(defs))
		for _, d := range defs {
			out = append(out, formResponse{Name: d.Name, Description: d.Description})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// validateFormHandler godoc
// @Summary Validar envío de formulario
// @Description Corre las reglas del formulario (orden de fechas contra visita/nacimiento, estado offstudy, consent version). Un rechazo devuelve 400 con errores por campo (`__all__` = error de formulario). Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>`.
// @Tags forms
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param formName path string true "Nombre del formulario"
// @Param payload body validateFormRequest true "cleaned_data; report_datetime RFC3339, offstudy_date YYYY-MM-DD"
// @Success 200 {object} validateFormResponse
// @Failure 400 {object} validateFormResponse "rechazo de validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "form not found / visit not found"
// @Router /forms/{formName}/validate [post]
func validateFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req validateFormRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := Submission{
			SubjectIdentifier: req.SubjectIdentifier,
			ChildVisitID:      req.ChildVisitID,
			InfantIdentifier:  req.InfantIdentifier,
			CapturedBy:        claims.UserID,
		}
		if s := strings.TrimSpace(req.ReportDatetime); s != "" {
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				http.Error(w, "report_datetime must be RFC3339", http.StatusBadRequest)
				return
			}
			in.ReportDatetime = &t
		}
		if s := strings.TrimSpace(req.OffstudyDate); s != "" {
			t, err := time.Parse("2006-01-02", s)
			if err != nil {
				http.Error(w, "offstudy_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.OffstudyDate = &t
		}

		res, err := svc.Validate(r.Context(), chi.URLParam(r, "formName"), in)
		if err != nil {
			switch {
			case errors.Is(err, ErrUnknownForm):
				http.Error(w, "form not found", http.StatusNotFound)
			case errors.Is(err, ErrVisitNotFound):
				http.Error(w, "visit not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "subject_identifier or child_visit_id required", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, statusOf(res), toValidateFormResponse(res))
	}
}

// latestConsentHandler godoc
// @Summary Último consentimiento de la cuidadora
// @Description Busca el consentimiento más reciente usando el identificador del niño sin su sufijo.
// @Tags subjects
// @Produce json
// @Param subjectIdentifier path string true "Identificador del niño"
// @Success 200 {object} consentResponse
// @Failure 404 {string} string "consent not found"
// @Router /subjects/{subjectIdentifier}/consents/latest [get]
func latestConsentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.LatestConsent(r.Context(), chi.URLParam(r, "subjectIdentifier"))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidInput):
				http.Error(w, "consent not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toConsentResponse(c))
	}
}

// consentHistoryHandler godoc
// @Summary Consentimientos de la cuidadora
// @Description Todos los consentimientos de la cuidadora del niño, el más reciente primero.
// @Tags subjects
// @Produce json
// @Param subjectIdentifier path string true "Identificador del niño"
// @Success 200 {array} consentResponse
// @Router /subjects/{subjectIdentifier}/consents [get]
func consentHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ConsentHistory(r.Context(), chi.URLParam(r, "subjectIdentifier"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "subject identifier required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]consentResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toConsentResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toConsentResponse(c subjects.SubjectConsent) consentResponse {
	return consentResponse{
		ID:                  c.ID,
		SubjectIdentifier:   c.SubjectIdentifier,
		ScreeningIdentifier: c.ScreeningIdentifier,
		ConsentDatetime:     c.ConsentDatetime,
	}
}

func statusOf(res Result) int {
	if res.Valid {
		return http.StatusOK
	}
	return http.StatusBadRequest
}

func toValidateFormResponse(res Result) validateFormResponse {
	out := validateFormResponse{
		ValidationID: res.ID,
		Form:         res.Form,
		Valid:        res.Valid,
	}
	if res.Err != nil {
		out.Kind = string(res.Err.Kind)
		out.Errors = res.Err.Errors()
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
