package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"patitas-eternas/internal/adapters/auth/jwtsession"
	"patitas-eternas/internal/config"
	"patitas-eternas/internal/middleware"
	"patitas-eternas/internal/ports/auth"
	"patitas-eternas/internal/router"
)

const (
	adminID = "admin-1"
	userID  = "user-1"
	otherID = "user-2"
)

func TestHTTP_EndToEnd_AdoptionFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	// 1) Admin publica a Luna
	petID := createPet(t, ts.URL, map[string]any{
		"name":        "Luna",
		"species":     "dog",
		"breed":       "Mestizo",
		"age":         "2",
		"size":        "medium",
		"gender":      "female",
		"location":    "CDMX",
		"description": "Muy cariñosa y juguetona",
	})

	// 2) Defaults aplicados y visible en el listado público
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID, "", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 getting pet, got %d body=%s", st, string(body))
		}
		pet := decodeMap(t, body)
		if pet["status"] != "available" {
			t.Fatalf("expected default status available, got %v", pet["status"])
		}
		if pet["age"] != float64(2) {
			t.Fatalf("expected age coerced to 2, got %v", pet["age"])
		}
		if pet["name"] != "Luna" || pet["species"] != "dog" {
			t.Fatalf("unexpected pet: %v", pet)
		}
	}

	// 3) Usuario envía solicitud
	appID := submitApplication(t, ts.URL, userID, petID)

	// 4) Otro usuario no puede verla
	{
		st, _ := doReq(t, ts.URL, "GET", "/adoption-applications/"+appID, otherID, "", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for non-owner, got %d", st)
		}
	}

	// 5) El dueño no puede cambiar el estado
	{
		st, _ := doReq(t, ts.URL, "PATCH", "/adoption-applications/"+appID, userID, "", map[string]any{"status": "approved"})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for owner patch, got %d", st)
		}
	}

	// 6) Admin aprueba
	{
		st, body := doReq(t, ts.URL, "PATCH", "/adoption-applications/"+appID, adminID, "admin", map[string]any{"status": "approved"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 approving, got %d body=%s", st, string(body))
		}
		app := decodeMap(t, body)
		if app["status"] != "approved" {
			t.Fatalf("expected approved, got %v", app["status"])
		}
	}

	// 7) Luna queda adoptada y sale del listado por defecto
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID, "", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		if decodeMap(t, body)["status"] != "adopted" {
			t.Fatalf("expected pet adopted, body=%s", string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/pets", "", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing pets, got %d", st)
		}
		var items []map[string]any
		if err := json.Unmarshal(body, &items); err != nil {
			t.Fatalf("decode list: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("expected adopted pet hidden from default listing, got %d", len(items))
		}
	}

	// 8) El dueño ve su solicitud en el listado; el otro usuario no
	{
		_, body := doReq(t, ts.URL, "GET", "/adoption-applications", userID, "", nil)
		var mine []map[string]any
		_ = json.Unmarshal(body, &mine)
		if len(mine) != 1 {
			t.Fatalf("expected 1 application for owner, got %d", len(mine))
		}

		_, body = doReq(t, ts.URL, "GET", "/adoption-applications", otherID, "", nil)
		var theirs []map[string]any
		_ = json.Unmarshal(body, &theirs)
		if len(theirs) != 0 {
			t.Fatalf("expected 0 applications for other user, got %d", len(theirs))
		}
	}
}

func TestHTTP_Applications_UnknownPetAndAnonymousList(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/adoption-applications", "", "", applicationBody("7b0c1e3a-5f2d-4c1b-9a0e-000000000000"))
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown pet, got %d body=%s", st, string(body))
	}

	st, _ = doReq(t, ts.URL, "GET", "/adoption-applications", "", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 listing anonymously, got %d", st)
	}
}

func TestHTTP_Pets_NonAdminCannotCreate(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "POST", "/pets", "", "", map[string]any{"name": "X"})
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 anonymous, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "POST", "/pets", userID, "user", map[string]any{"name": "X"})
	if st != http.StatusForbidden {
		t.Fatalf("expected 403 non-admin, got %d", st)
	}
}

func TestHTTP_Register_DuplicateEmail(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	payload := map[string]any{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "secreto123",
	}
	st, body := doReq(t, ts.URL, "POST", "/auth/register", "", "", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 registering, got %d body=%s", st, string(body))
	}
	if _, ok := decodeMap(t, body)["password"]; ok {
		t.Fatalf("password must never be returned")
	}

	payload["email"] = "ANA@example.com"
	st, _ = doReq(t, ts.URL, "POST", "/auth/register", "", "", payload)
	if st != http.StatusConflict {
		t.Fatalf("expected 409 duplicate email, got %d", st)
	}
}

func TestHTTP_Images_UploadAndServe(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 1024)...)

	st, body := upload(t, ts.URL, adminID, "admin", "foto luna.png", "image/png", png)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 uploading png, got %d body=%s", st, string(body))
	}
	id, _ := decodeMap(t, body)["id"].(string)
	if id == "" {
		t.Fatalf("expected image id, body=%s", string(body))
	}

	resp, err := http.Get(ts.URL + "/images/" + id)
	if err != nil {
		t.Fatalf("get image: %v", err)
	}
	got, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Type") != "image/png" {
		t.Fatalf("expected png 200, got %d %q", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
	if !bytes.Equal(got, png) {
		t.Fatalf("served bytes differ from upload")
	}

	st, _ = upload(t, ts.URL, adminID, "admin", "doc.pdf", "application/pdf", []byte("%PDF-1.4"))
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for pdf, got %d", st)
	}
}

func TestHTTP_Payments_NotConfigured(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// las donaciones no requieren sesión; sin pasarela ambas responden 500
	for _, uid := range []string{"", userID} {
		st, body := doReq(t, ts.URL, "POST", "/payments/create-order", uid, "", map[string]any{"amount": 100})
		if st != http.StatusInternalServerError {
			t.Fatalf("expected 500 without gateway (user=%q), got %d body=%s", uid, st, string(body))
		}
		if msg := decodeMap(t, body)["message"]; msg != "Pagos no disponibles" {
			t.Fatalf("unexpected message %v", msg)
		}
	}
}

func TestHTTP_HealthAndMetrics(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "GET", "/health", "", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}
	st, body := doReq(t, ts.URL, "GET", "/metrics", "", "", nil)
	if st != http.StatusOK || !bytes.Contains(body, []byte("http_requests_total")) {
		t.Fatalf("expected metrics exposition, got %d", st)
	}
}

func TestNewVerifier_Selection(t *testing.T) {
	cfg := &config.Config{}
	v, err := router.NewVerifier(cfg)
	if err != nil || v != nil {
		t.Fatalf("expected dev mode without secret, got %v %v", v, err)
	}

	cfg.Auth.JWTSecret = "short"
	if _, err := router.NewVerifier(cfg); err == nil {
		t.Fatalf("expected error for short secret")
	}

	cfg.Auth.JWTSecret = "una-clave-de-sesion-bastante-larga"
	v, err = router.NewVerifier(cfg)
	if err != nil || v == nil {
		t.Fatalf("expected jwt verifier, got %v %v", v, err)
	}
}

func TestHTTP_BearerSession(t *testing.T) {
	signer, err := jwtsession.NewVerifier("una-clave-de-sesion-bastante-larga")
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: signer}))
	defer ts.Close()

	tok, err := signer.Sign(auth.Claims{UserID: adminID, Role: "admin"}, time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	// con verifier, los headers de debug no autentican
	st, _ := doReq(t, ts.URL, "GET", "/adoption-applications", adminID, "admin", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 with debug headers only, got %d", st)
	}

	req, err := http.NewRequest("GET", ts.URL+"/adoption-applications", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	st, body := send(t, req)
	if st != http.StatusOK {
		t.Fatalf("expected 200 with bearer token, got %d body=%s", st, string(body))
	}
}

// -------------------- helpers --------------------

func createPet(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/pets", adminID, "admin", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating pet, got %d body=%s", st, string(body))
	}
	id, _ := decodeMap(t, body)["id"].(string)
	if id == "" {
		t.Fatalf("missing pet id, body=%s", string(body))
	}
	return id
}

func applicationBody(petID string) map[string]any {
	return map[string]any{
		"petId":        petID,
		"name":         "Ana López",
		"email":        "ana@example.com",
		"phone":        "5512345678",
		"address":      "Calle 1, CDMX",
		"housingType":  "house",
		"hasOtherPets": false,
		"experience":   "He tenido perros toda mi vida",
		"reason":       "Quiero darle un hogar a Luna",
	}
}

func submitApplication(t *testing.T, baseURL, uid, petID string) string {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/adoption-applications", uid, "", applicationBody(petID))
	if st != http.StatusCreated {
		t.Fatalf("expected 201 submitting application, got %d body=%s", st, string(body))
	}
	id, _ := decodeMap(t, body)["id"].(string)
	if id == "" {
		t.Fatalf("missing application id, body=%s", string(body))
	}
	return id
}

func upload(t *testing.T, baseURL, uid, role, filename, contentType string, data []byte) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(map[string][]string)
	h["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
	h["Content-Type"] = []string{contentType}
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	_, _ = part.Write(data)
	_ = mw.Close()

	req, err := http.NewRequest("POST", baseURL+"/images", &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(middleware.DebugUserHeader, uid)
	req.Header.Set(middleware.DebugRoleHeader, role)
	return send(t, req)
}

func decodeMap(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("decode json: %v body=%s", err, string(body))
	}
	return m
}

func doReq(t *testing.T, baseURL, method, path, uid, role string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if uid != "" {
		req.Header.Set(middleware.DebugUserHeader, uid)
	}
	if role != "" {
		req.Header.Set(middleware.DebugRoleHeader, role)
	}
	return send(t, req)
}

func send(t *testing.T, req *http.Request) (int, []byte) {
	t.Helper()
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}
