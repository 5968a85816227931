package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mem "child-validations/internal/adapters/storage/memory"
	"child-validations/internal/domain/actionitems"
	"child-validations/internal/domain/subjects"
	"child-validations/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var visitAt = time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)

type validateResp struct {
	ValidationID string              `json:"validation_id"`
	Form         string              `json:"form"`
	Valid        bool                `json:"valid"`
	Kind         string              `json:"kind"`
	Errors       map[string][]string `json:"errors"`
}

func newServer(t *testing.T) (*httptest.Server, *mem.SubjectsStore, *mem.ActionItemsRepo) {
	t.Helper()

	store := mem.NewSubjectsStore()
	items := mem.NewActionItemsRepo()

	h, err := router.NewRouter(router.Options{Subjects: store, ActionItems: items})
	require.NoError(t, err)

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts, store, items
}

func TestHTTP_EndToEnd_OffstudyLifecycle(t *testing.T) {
	ts, store, items := newServer(t)
	userID := "ra-1"

	visit, err := store.SaveVisit(subjects.Visit{SubjectIdentifier: "B142-040990462-10", ReportDatetime: visitAt})
	require.NoError(t, err)

	// 1) CRF con report_datetime posterior a la visita => válido
	{
		st, body := doReq(t, ts.URL, "POST", "/forms/child_visit_crf/validate", userID, map[string]any{
			"child_visit_id":  visit.ID,
			"report_datetime": visitAt.Add(time.Hour).Format(time.RFC3339),
		})
		require.Equal(t, http.StatusOK, st, string(body))
		resp := decode(t, body)
		assert.True(t, resp.Valid)
		assert.NotEmpty(t, resp.ValidationID)
	}

	// 2) report_datetime anterior a la visita => 400 bajo __all__
	{
		st, body := doReq(t, ts.URL, "POST", "/forms/child_visit_crf/validate", userID, map[string]any{
			"child_visit_id":  visit.ID,
			"report_datetime": visitAt.Add(-time.Hour).Format(time.RFC3339),
		})
		require.Equal(t, http.StatusBadRequest, st, string(body))
		resp := decode(t, body)
		assert.False(t, resp.Valid)
		assert.Equal(t, "date_ordering_violation", resp.Kind)
		assert.Equal(t, []string{"Report datetime cannot be before visit datetime."}, resp.Errors["__all__"])
	}

	// 3) offstudy agendado => no se captura nada nuevo
	_, err = items.Save(actionitems.ActionItem{
		SubjectIdentifier: visit.SubjectIdentifier,
		ActionType:        actionitems.ChildOffStudyAction,
		Status:            actionitems.StatusNew,
	})
	require.NoError(t, err)
	{
		st, body := doReq(t, ts.URL, "POST", "/forms/child_visit_crf/validate", userID, map[string]any{
			"child_visit_id": visit.ID,
		})
		require.Equal(t, http.StatusBadRequest, st, string(body))
		assert.Equal(t, "offstudy_conflict", decode(t, body).Kind)
	}

	// 4) el formulario de offstudy sí se puede capturar; offstudy_date se valida contra la visita
	{
		st, body := doReq(t, ts.URL, "POST", "/forms/child_offstudy/validate", userID, map[string]any{
			"child_visit_id": visit.ID,
			"offstudy_date":  "2025-06-09",
		})
		require.Equal(t, http.StatusBadRequest, st, string(body))
		resp := decode(t, body)
		assert.Equal(t, []string{"offstudy date cannot be before visit date."}, resp.Errors["offstudy_date"])

		st, body = doReq(t, ts.URL, "POST", "/forms/child_offstudy/validate", userID, map[string]any{
			"child_visit_id": visit.ID,
			"offstudy_date":  "2025-06-10",
		})
		require.Equal(t, http.StatusOK, st, string(body))
	}
}

func TestHTTP_Validate_RequestErrors(t *testing.T) {
	ts, _, _ := newServer(t)

	st, _ := doReq(t, ts.URL, "POST", "/forms/child_visit_crf/validate", "", map[string]any{"subject_identifier": "B1-10"})
	assert.Equal(t, http.StatusUnauthorized, st)

	st, _ = doReq(t, ts.URL, "POST", "/forms/unknown/validate", "ra-1", map[string]any{"subject_identifier": "B1-10"})
	assert.Equal(t, http.StatusNotFound, st)

	st, _ = doReq(t, ts.URL, "POST", "/forms/child_visit_crf/validate", "ra-1", map[string]any{"child_visit_id": "missing"})
	assert.Equal(t, http.StatusNotFound, st)

	st, _ = doReq(t, ts.URL, "POST", "/forms/child_visit_crf/validate", "ra-1", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, st)

	st, _ = doReq(t, ts.URL, "POST", "/forms/child_visit_crf/validate", "ra-1", map[string]any{
		"subject_identifier": "B1-10",
		"report_datetime":    "yesterday",
	})
	assert.Equal(t, http.StatusBadRequest, st)
}

func TestHTTP_LatestConsent(t *testing.T) {
	ts, store, _ := newServer(t)

	st, _ := doReq(t, ts.URL, "GET", "/subjects/123-10/consents/latest", "", nil)
	assert.Equal(t, http.StatusNotFound, st)

	_, err := store.SaveConsent(subjects.SubjectConsent{ID: "c1", SubjectIdentifier: "123", ScreeningIdentifier: "S1", ConsentDatetime: visitAt})
	require.NoError(t, err)
	_, err = store.SaveConsent(subjects.SubjectConsent{ID: "c2", SubjectIdentifier: "123", ScreeningIdentifier: "S2", ConsentDatetime: visitAt.Add(time.Hour)})
	require.NoError(t, err)

	st, body := doReq(t, ts.URL, "GET", "/subjects/123-10/consents/latest", "", nil)
	require.Equal(t, http.StatusOK, st, string(body))

	var resp struct {
		ID                  string `json:"id"`
		ScreeningIdentifier string `json:"screening_identifier"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "c2", resp.ID)
	assert.Equal(t, "S2", resp.ScreeningIdentifier)
}

func TestHTTP_ConsentHistory(t *testing.T) {
	ts, store, _ := newServer(t)

	st, body := doReq(t, ts.URL, "GET", "/subjects/123-10/consents", "", nil)
	require.Equal(t, http.StatusOK, st)
	assert.JSONEq(t, "[]", string(body))

	_, err := store.SaveConsent(subjects.SubjectConsent{ID: "c1", SubjectIdentifier: "123", ScreeningIdentifier: "S1", ConsentDatetime: visitAt})
	require.NoError(t, err)
	_, err = store.SaveConsent(subjects.SubjectConsent{ID: "c2", SubjectIdentifier: "123", ScreeningIdentifier: "S2", ConsentDatetime: visitAt.Add(time.Hour)})
	require.NoError(t, err)

	st, body = doReq(t, ts.URL, "GET", "/subjects/123-10/consents", "", nil)
	require.Equal(t, http.StatusOK, st, string(body))

	var resp []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "c2", resp[0].ID)
	assert.Equal(t, "c1", resp[1].ID)
}

func TestHTTP_HealthAndForms(t *testing.T) {
	ts, _, _ := newServer(t)

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, st)
	assert.Equal(t, "ok", string(body))

	st, body = doReq(t, ts.URL, "GET", "/forms", "", nil)
	require.Equal(t, http.StatusOK, st)
	var list []map[string]string
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list, 4)
}

func decode(t *testing.T, body []byte) validateResp {
	t.Helper()
	var resp validateResp
	require.NoError(t, json.Unmarshal(body, &resp), string(body))
	return resp
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
