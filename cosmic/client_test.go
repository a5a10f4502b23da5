package cosmic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testClient(ts *httptest.Server, writeKey string) *Client {
	return NewClient(Config{
		BucketSlug: "therapy-bucket",
		ReadKey:    "rk",
		WriteKey:   writeKey,
		BaseURL:    ts.URL,
	})
}

func TestGetAppointmentsFilterShaping(t *testing.T) {
	var gotQuery map[string]any
	var gotSort, gotDepth, gotReadKey string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/buckets/therapy-bucket/objects") {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if err := json.Unmarshal([]byte(r.URL.Query().Get("query")), &gotQuery); err != nil {
			t.Fatalf("decode query: %v", err)
		}
		gotSort = r.URL.Query().Get("sort")
		gotDepth = r.URL.Query().Get("depth")
		gotReadKey = r.URL.Query().Get("read_key")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"objects": []map[string]any{{
				"id":    "appt_1",
				"title": "Jane Doe - Mar 5 at 3:00 PM",
				"metadata": map[string]any{
					"client_name":      "Jane Doe",
					"appointment_date": "2025-03-05",
					"status":           "scheduled",
					"therapist": map[string]any{
						"id": "ther_1",
						"metadata": map[string]any{
							"first_name": "Sam",
							"last_name":  "Rivera",
						},
					},
				},
			}},
			"total": 1,
		})
	}))
	defer ts.Close()

	c := testClient(ts, "")
	appointments, err := c.GetAppointments(context.Background(), &AppointmentFilter{
		Status:    "scheduled",
		Therapist: "ther_1",
		DateFrom:  "2025-03-01",
		DateTo:    "2025-03-31",
	})
	if err != nil {
		t.Fatalf("GetAppointments error: %v", err)
	}

	if gotQuery["type"] != "appointments" {
		t.Fatalf("unexpected type in query: %v", gotQuery["type"])
	}
	if gotQuery["metadata.status"] != "scheduled" {
		t.Fatalf("unexpected status in query: %v", gotQuery["metadata.status"])
	}
	if gotQuery["metadata.therapist"] != "ther_1" {
		t.Fatalf("unexpected therapist in query: %v", gotQuery["metadata.therapist"])
	}
	dateRange, ok := gotQuery["metadata.appointment_date"].(map[string]any)
	if !ok || dateRange["$gte"] != "2025-03-01" || dateRange["$lte"] != "2025-03-31" {
		t.Fatalf("unexpected date range in query: %v", gotQuery["metadata.appointment_date"])
	}
	if gotSort != "-metadata.appointment_date" {
		t.Fatalf("unexpected sort: %s", gotSort)
	}
	if gotDepth != "1" {
		t.Fatalf("unexpected depth: %s", gotDepth)
	}
	if gotReadKey != "rk" {
		t.Fatalf("unexpected read key: %s", gotReadKey)
	}

	if len(appointments) != 1 || appointments[0].ID != "appt_1" {
		t.Fatalf("unexpected appointments: %+v", appointments)
	}
	therapist := appointments[0].Metadata.Therapist
	if therapist == nil || therapist.Metadata.FirstName != "Sam" {
		t.Fatalf("expected depth-1 expanded therapist, got %+v", therapist)
	}
}

func TestGetAppointmentsDateRangeNeedsBothBounds(t *testing.T) {
	var gotQuery map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.Unmarshal([]byte(r.URL.Query().Get("query")), &gotQuery)
		_ = json.NewEncoder(w).Encode(map[string]any{"objects": []any{}, "total": 0})
	}))
	defer ts.Close()

	c := testClient(ts, "")
	if _, err := c.GetAppointments(context.Background(), &AppointmentFilter{DateFrom: "2025-03-01"}); err != nil {
		t.Fatalf("GetAppointments error: %v", err)
	}
	if _, present := gotQuery["metadata.appointment_date"]; present {
		t.Fatalf("date constraint should be absent without both bounds: %v", gotQuery)
	}
}

func TestBareTherapistReference(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"objects": []map[string]any{{
				"id": "appt_1",
				"metadata": map[string]any{
					"client_name": "Jane Doe",
					"therapist":   "ther_9",
				},
			}},
			"total": 1,
		})
	}))
	defer ts.Close()

	c := testClient(ts, "")
	appointments, err := c.GetAppointments(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetAppointments error: %v", err)
	}
	if appointments[0].Metadata.Therapist == nil || appointments[0].Metadata.Therapist.ID != "ther_9" {
		t.Fatalf("expected bare-id therapist reference, got %+v", appointments[0].Metadata.Therapist)
	}
}

func TestNotFoundMeansEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"No objects found"}`, http.StatusNotFound)
	}))
	defer ts.Close()

	c := testClient(ts, "")

	appointments, err := c.GetAppointments(context.Background(), nil)
	if err != nil {
		t.Fatalf("expected empty result, got error: %v", err)
	}
	if appointments == nil || len(appointments) != 0 {
		t.Fatalf("expected empty slice, got %+v", appointments)
	}

	user, err := c.GetUserByEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("expected nil user, got error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}
}

func TestFetchErrorsAreTypeTagged(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := testClient(ts, "")

	if _, err := c.GetPayments(context.Background(), nil); err == nil || !strings.Contains(err.Error(), "failed to fetch payments") {
		t.Fatalf("expected tagged payments error, got %v", err)
	}
	if _, err := c.GetTherapists(context.Background()); err == nil || !strings.Contains(err.Error(), "failed to fetch therapists") {
		t.Fatalf("expected tagged therapists error, got %v", err)
	}
}

func TestGetTherapistsSortsByFirstName(t *testing.T) {
	var gotSort string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSort = r.URL.Query().Get("sort")
		_ = json.NewEncoder(w).Encode(map[string]any{"objects": []any{}, "total": 0})
	}))
	defer ts.Close()

	c := testClient(ts, "")
	if _, err := c.GetTherapists(context.Background()); err != nil {
		t.Fatalf("GetTherapists error: %v", err)
	}
	if gotSort != "metadata.first_name" {
		t.Fatalf("unexpected sort: %s", gotSort)
	}
}

func TestGetClientsQuery(t *testing.T) {
	var gotQuery map[string]any
	var gotSort string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.Unmarshal([]byte(r.URL.Query().Get("query")), &gotQuery)
		gotSort = r.URL.Query().Get("sort")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"objects": []map[string]any{{
				"id": "cli_1",
				"metadata": map[string]any{
					"first_name": "Jane",
					"last_name":  "Doe",
					"status":     "active",
				},
			}},
			"total": 1,
		})
	}))
	defer ts.Close()

	c := testClient(ts, "")
	clients, err := c.GetClients(context.Background(), "active")
	if err != nil {
		t.Fatalf("GetClients error: %v", err)
	}

	if gotQuery["type"] != "clients" {
		t.Fatalf("unexpected type in query: %v", gotQuery["type"])
	}
	if gotQuery["metadata.status"] != "active" {
		t.Fatalf("unexpected status in query: %v", gotQuery["metadata.status"])
	}
	if gotSort != "metadata.last_name" {
		t.Fatalf("unexpected sort: %s", gotSort)
	}
	if len(clients) != 1 || clients[0].ID != "cli_1" || clients[0].Metadata.LastName != "Doe" {
		t.Fatalf("unexpected clients: %+v", clients)
	}
}

func TestGetClientsOmitsEmptyStatus(t *testing.T) {
	var gotQuery map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.Unmarshal([]byte(r.URL.Query().Get("query")), &gotQuery)
		_ = json.NewEncoder(w).Encode(map[string]any{"objects": []any{}, "total": 0})
	}))
	defer ts.Close()

	c := testClient(ts, "")
	if _, err := c.GetClients(context.Background(), ""); err != nil {
		t.Fatalf("GetClients error: %v", err)
	}
	if _, present := gotQuery["metadata.status"]; present {
		t.Fatalf("status constraint should be absent when unset: %v", gotQuery)
	}
}

func TestCreateAppointmentDefaults(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"object": map[string]any{
				"id":       "appt_new",
				"title":    gotBody["title"],
				"metadata": gotBody["metadata"],
			},
		})
	}))
	defer ts.Close()

	c := testClient(ts, "wk")
	appointment, err := c.CreateAppointment(context.Background(), "Jane Doe - Mar 5 at 3:00 PM", map[string]any{
		"client_name": "Jane Doe",
		"duration":    90,
	})
	if err != nil {
		t.Fatalf("CreateAppointment error: %v", err)
	}

	if gotAuth != "Bearer wk" {
		t.Fatalf("unexpected auth header: %s", gotAuth)
	}
	metadata, _ := gotBody["metadata"].(map[string]any)
	if metadata["status"] != "scheduled" {
		t.Fatalf("expected default status, got %v", metadata["status"])
	}
	if metadata["payment_status"] != "pending" {
		t.Fatalf("expected default payment_status, got %v", metadata["payment_status"])
	}
	if metadata["duration"] != float64(90) {
		t.Fatalf("expected caller duration to override default, got %v", metadata["duration"])
	}
	slug, _ := gotBody["slug"].(string)
	if !strings.HasPrefix(slug, "jane-doe-") {
		t.Fatalf("unexpected slug: %s", slug)
	}
	if appointment.ID != "appt_new" {
		t.Fatalf("unexpected appointment: %+v", appointment)
	}
}

func TestWritesRequireWriteKey(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not reach the store")
	}))
	defer ts.Close()

	c := testClient(ts, "")

	if _, err := c.CreateAppointment(context.Background(), "x", nil); !errors.Is(err, ErrWriteKeyRequired) {
		t.Fatalf("expected ErrWriteKeyRequired, got %v", err)
	}
	if err := c.DeleteAppointment(context.Background(), "appt_1"); !errors.Is(err, ErrWriteKeyRequired) {
		t.Fatalf("expected ErrWriteKeyRequired, got %v", err)
	}
}

func TestDeleteAppointment(t *testing.T) {
	var gotMethod, gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := testClient(ts, "wk")
	if err := c.DeleteAppointment(context.Background(), "appt_1"); err != nil {
		t.Fatalf("DeleteAppointment error: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Fatalf("unexpected method: %s", gotMethod)
	}
	if gotPath != "/buckets/therapy-bucket/objects/appt_1" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
}

func TestUpdateAppointmentPatchesMetadata(t *testing.T) {
	var gotMethod string
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"object": map[string]any{"id": "appt_1", "metadata": map[string]any{"status": "completed"}},
		})
	}))
	defer ts.Close()

	c := testClient(ts, "wk")
	appointment, err := c.UpdateAppointment(context.Background(), "appt_1", "", map[string]any{"status": "completed"})
	if err != nil {
		t.Fatalf("UpdateAppointment error: %v", err)
	}
	if gotMethod != http.MethodPatch {
		t.Fatalf("unexpected method: %s", gotMethod)
	}
	if _, present := gotBody["title"]; present {
		t.Fatalf("empty title should be omitted from patch: %v", gotBody)
	}
	if appointment.Metadata.Status != "completed" {
		t.Fatalf("unexpected appointment: %+v", appointment)
	}
}
