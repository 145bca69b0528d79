package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"taskloop/internal/adapter/persistence/repository"
	"taskloop/internal/adapter/persistence/snapshot"
	"taskloop/internal/infrastructure/export"
	"taskloop/internal/infrastructure/logging"
	"taskloop/internal/infrastructure/payments"

	"github.com/gin-gonic/gin"
)

const fixtureInvoiceID = "b0a80101-0000-4000-8000-000000000001"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logging.SetOutput(io.Discard)
	if err := RegisterValidations(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gateway, err := payments.NewMercadoPagoGateway("", true)
	if err != nil {
		t.Fatalf("gateway: %v", err)
	}
	storage := NewMemoryStorage(repository.NewFixtures(time.Now()))
	return NewRouter(NewHandlers(storage, gateway, export.NewInvoiceXLSXExporter(), time.UTC), nil)
}

func call(t *testing.T, r http.Handler, method, path, body string, out any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w
}

func TestRouter_Ping(t *testing.T) {
	r := newTestRouter(t)
	var body map[string]string
	w := call(t, r, http.MethodGet, "/v1/ping", "", &body)
	if w.Code != http.StatusOK || body["message"] != "pong" {
		t.Fatalf("unexpected ping: %d %v", w.Code, body)
	}
	if w.Header().Get("X-Correlation-ID") == "" {
		t.Fatalf("expected correlation id header")
	}
}

func TestRouter_FixturesAreServed(t *testing.T) {
	r := newTestRouter(t)

	var list struct {
		Count int `json:"count"`
	}
	for path, want := range map[string]int{
		"/v1/clients":  2,
		"/v1/quotes":   1,
		"/v1/jobs":     2,
		"/v1/requests": 2,
		"/v1/invoices": 1,
	} {
		if w := call(t, r, http.MethodGet, path, "", &list); w.Code != http.StatusOK || list.Count != want {
			t.Fatalf("%s: expected %d items, got %d (status %d)", path, want, list.Count, w.Code)
		}
	}
}

// Quote -> job -> invoice -> payment, all through the public API.
func TestRouter_QuoteToPaidInvoice(t *testing.T) {
	r := newTestRouter(t)
	clientID := "c0a80101-0000-4000-8000-000000000001"

	var quote struct {
		ID     string  `json:"id"`
		Status string  `json:"status"`
		Total  float64 `json:"total"`
	}
	w := call(t, r, http.MethodPost, "/v1/quotes",
		`{"client_id":"`+clientID+`","title":"Deck staining","line_items":[{"description":"Stain","quantity":2,"unit_price":50}],"discount":{"type":"fixed","value":10},"tax_rate":10}`,
		&quote)
	if w.Code != http.StatusCreated {
		t.Fatalf("create quote: %d %s", w.Code, w.Body.String())
	}
	if quote.Total != 99 {
		t.Fatalf("expected total 99, got %v", quote.Total)
	}

	var job struct {
		ID       string  `json:"id"`
		QuoteID  string  `json:"quote_id"`
		ClientID string  `json:"client_id"`
		Total    float64 `json:"total"`
	}
	if w := call(t, r, http.MethodPost, "/v1/quotes/"+quote.ID+"/convert", "", &job); w.Code != http.StatusCreated {
		t.Fatalf("convert: %d %s", w.Code, w.Body.String())
	}
	if job.QuoteID != quote.ID || job.ClientID != clientID {
		t.Fatalf("unexpected job: %+v", job)
	}

	if w := call(t, r, http.MethodGet, "/v1/quotes/"+quote.ID, "", &quote); w.Code != http.StatusOK || quote.Status != "approved" {
		t.Fatalf("expected approved quote, got %d %+v", w.Code, quote)
	}

	var inv struct {
		ID      string  `json:"id"`
		Status  string  `json:"status"`
		Total   float64 `json:"total"`
		Balance float64 `json:"balance"`
	}
	if w := call(t, r, http.MethodPost, "/v1/jobs/"+job.ID+"/invoice", `{"tax_rate":10}`, &inv); w.Code != http.StatusCreated {
		t.Fatalf("invoice from job: %d %s", w.Code, w.Body.String())
	}
	if inv.Status != "draft" || inv.Total != 110 || inv.Balance != 110 {
		t.Fatalf("unexpected invoice: %+v", inv)
	}

	if w := call(t, r, http.MethodPost, "/v1/invoices/"+inv.ID+"/payments", `{"transaction_amount":10}`, nil); w.Code != http.StatusConflict {
		t.Fatalf("draft invoice should not be payable, got %d", w.Code)
	}

	if w := call(t, r, http.MethodPatch, "/v1/invoices/"+inv.ID+"/status", `{"status":"sent"}`, &inv); w.Code != http.StatusOK {
		t.Fatalf("send invoice: %d %s", w.Code, w.Body.String())
	}

	if w := call(t, r, http.MethodPost, "/v1/invoices/"+inv.ID+"/payments", `{"mp_payload":{"transaction_amount":60}}`, nil); w.Code != http.StatusCreated {
		t.Fatalf("partial payment: %d %s", w.Code, w.Body.String())
	}
	if w := call(t, r, http.MethodPost, "/v1/invoices/"+inv.ID+"/payments", "", nil); w.Code != http.StatusCreated {
		t.Fatalf("balance payment: %d %s", w.Code, w.Body.String())
	}

	call(t, r, http.MethodGet, "/v1/invoices/"+inv.ID, "", &inv)
	if inv.Status != "paid" || inv.Balance != 0 {
		t.Fatalf("expected paid invoice, got %+v", inv)
	}

	var payments struct {
		Count int `json:"count"`
	}
	call(t, r, http.MethodGet, "/v1/invoices/"+inv.ID+"/payments", "", &payments)
	if payments.Count != 2 {
		t.Fatalf("expected 2 payments, got %d", payments.Count)
	}
}

func TestRouter_DeleteClientKeepsDocuments(t *testing.T) {
	r := newTestRouter(t)
	clientID := "c0a80101-0000-4000-8000-000000000001"

	if w := call(t, r, http.MethodDelete, "/v1/clients/"+clientID, "", nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", w.Code)
	}
	if w := call(t, r, http.MethodGet, "/v1/clients/"+clientID, "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}

	var list struct {
		Count int `json:"count"`
	}
	call(t, r, http.MethodGet, "/v1/jobs?client_id="+clientID, "", &list)
	if list.Count == 0 {
		t.Fatalf("jobs of a deleted client should remain")
	}
}

func TestRouter_Calendar(t *testing.T) {
	r := newTestRouter(t)
	now := time.Now().UTC()

	var month struct {
		Cells []struct {
			Events []json.RawMessage `json:"events"`
		} `json:"cells"`
	}
	path := "/v1/calendar/month?year=" + now.Format("2006") + "&month=" + now.Format("1")
	if w := call(t, r, http.MethodGet, path, "", &month); w.Code != http.StatusOK {
		t.Fatalf("month: %d %s", w.Code, w.Body.String())
	}
	if len(month.Cells) != 42 {
		t.Fatalf("expected 42 cells, got %d", len(month.Cells))
	}

	var day struct {
		Slots []json.RawMessage `json:"slots"`
	}
	if w := call(t, r, http.MethodGet, "/v1/calendar/day", "", &day); w.Code != http.StatusOK || len(day.Slots) != 24 {
		t.Fatalf("day: %d with %d slots", w.Code, len(day.Slots))
	}

	from := now.AddDate(0, 0, -7).Format("2006-01-02")
	to := now.AddDate(0, 0, 7).Format("2006-01-02")
	var events struct {
		Count int `json:"count"`
	}
	if w := call(t, r, http.MethodGet, "/v1/calendar/events?from="+from+"&to="+to, "", &events); w.Code != http.StatusOK {
		t.Fatalf("events: %d %s", w.Code, w.Body.String())
	}
	if events.Count == 0 {
		t.Fatalf("expected fixture events around today")
	}
}

func TestRouter_ExportInvoices(t *testing.T) {
	r := newTestRouter(t)

	w := call(t, r, http.MethodGet, "/v1/invoices/export", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export: %d %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Header().Get("Content-Type"), "spreadsheetml") {
		t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
	}
	if !strings.HasSuffix(w.Header().Get("Content-Disposition"), ".xlsx") {
		t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Fatalf("expected a zip container")
	}
}

func TestRouter_PayFixtureInvoice(t *testing.T) {
	r := newTestRouter(t)

	var inv struct {
		AmountPaid float64 `json:"amount_paid"`
		Balance    float64 `json:"balance"`
	}
	call(t, r, http.MethodGet, "/v1/invoices/"+fixtureInvoiceID, "", &inv)
	before := inv.Balance

	if w := call(t, r, http.MethodPost, "/v1/invoices/"+fixtureInvoiceID+"/payments", `{"transaction_amount":1}`, nil); w.Code != http.StatusCreated {
		t.Fatalf("pay: %d %s", w.Code, w.Body.String())
	}
	call(t, r, http.MethodGet, "/v1/invoices/"+fixtureInvoiceID, "", &inv)
	if inv.Balance != before-1 {
		t.Fatalf("expected balance %v, got %v", before-1, inv.Balance)
	}
}

func TestNewSnapshotStorage(t *testing.T) {
	ctx := context.Background()
	store := snapshot.NewMemoryStore()
	fx := repository.NewFixtures(time.Now())

	first, err := NewSnapshotStorage(ctx, store, "test:", fx)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	jobs, _ := first.Jobs.List(ctx)
	if len(jobs) != len(fx.Jobs) {
		t.Fatalf("expected %d seeded jobs, got %d", len(fx.Jobs), len(jobs))
	}
	if _, err := first.Jobs.Delete(ctx, jobs[0].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	second, err := NewSnapshotStorage(ctx, store, "test:", fx)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	jobs, _ = second.Jobs.List(ctx)
	if len(jobs) != len(fx.Jobs)-1 {
		t.Fatalf("existing snapshot should not be reseeded: got %d jobs", len(jobs))
	}
}

func TestRouter_SwaggerDocHasNoSecurityDefinitions(t *testing.T) {
	r := newTestRouter(t)
	w := call(t, r, http.MethodGet, "/swagger/doc.json", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("doc.json: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"/invoices/{id}/payments"`) {
		t.Fatalf("expected payment route in swagger doc")
	}
	if strings.Contains(w.Body.String(), "securityDefinitions") {
		t.Fatalf("swagger doc advertises auth the API does not enforce")
	}
}

func TestRouter_ConcurrentPaymentsShareSnapshotLock(t *testing.T) {
	ctx := context.Background()
	store := snapshot.NewMemoryStore()
	fx := repository.NewFixtures(time.Now())
	gateway, err := payments.NewMercadoPagoGateway("", true)
	if err != nil {
		t.Fatalf("gateway: %v", err)
	}

	// Two routers over one store behave like two API processes.
	routers := make([]*gin.Engine, 2)
	for i := range routers {
		s, err := NewSnapshotStorage(ctx, store, "pay:", fx)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		routers[i] = NewRouter(NewHandlers(s, gateway, export.NewInvoiceXLSXExporter(), time.UTC), nil)
	}

	var inv struct {
		AmountPaid float64 `json:"amount_paid"`
		Balance    float64 `json:"balance"`
	}
	call(t, routers[0], http.MethodGet, "/v1/invoices/"+fixtureInvoiceID, "", &inv)
	before := inv.Balance

	const perRouter = 10
	var wg sync.WaitGroup
	codes := make(chan int, 2*perRouter)
	for _, r := range routers {
		for i := 0; i < perRouter; i++ {
			wg.Add(1)
			go func(r http.Handler) {
				defer wg.Done()
				req := httptest.NewRequest(http.MethodPost, "/v1/invoices/"+fixtureInvoiceID+"/payments", strings.NewReader(`{"transaction_amount":1}`))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)
				codes <- w.Code
			}(r)
		}
	}
	wg.Wait()
	close(codes)
	for code := range codes {
		if code != http.StatusCreated {
			t.Fatalf("expected every payment created, got %d", code)
		}
	}

	call(t, routers[1], http.MethodGet, "/v1/invoices/"+fixtureInvoiceID, "", &inv)
	if inv.Balance != before-2*perRouter || inv.AmountPaid != 2*perRouter {
		t.Fatalf("lost payment updates: balance %v -> %v, amount_paid %v", before, inv.Balance, inv.AmountPaid)
	}
}
