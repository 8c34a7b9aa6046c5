package controller_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"

	"utsav_backend/internals/features/delegates/route"
	"utsav_backend/internals/features/submission/mock"
	pipeline "utsav_backend/internals/features/submission/service"
	"utsav_backend/internals/helpers/testutil"
)

func newDelegateApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock, *mock.Store, *mock.Notifier) {
	t.Helper()
	db, sqlMock := testutil.NewGormMock(t)
	store := &mock.Store{}
	notifier := &mock.Notifier{}

	app := fiber.New()
	route.DelegateRoutes(app.Group("/api/delegates"), pipeline.NewPipeline(db, store, notifier))
	return app, sqlMock, store, notifier
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return out
}

func validDelegateForm() map[string]string {
	return map[string]string{
		"tier_id":     "silver",
		"name":        "Asha Rao",
		"email":       "asha@college.edu",
		"phone":       "+919812345678",
		"institution": "NIT Surat",
	}
}

func TestCreateDelegate_SilverEndToEnd(t *testing.T) {
	app, sqlMock, store, notifier := newDelegateApp(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(`INSERT INTO "delegates"`).
		WithArgs(
			sqlmock.AnyArg(), // delegate_id
			"Asha Rao", "asha@college.edu", "+919812345678", "NIT Surat",
			"silver", 250, "pending",
			sqlmock.AnyArg(), // screenshot URL
			sqlmock.AnyArg(), // created_at
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectCommit()

	req := testutil.MultipartRequest(t, "/api/delegates/", validDelegateForm(),
		&testutil.FilePart{Field: "payment_screenshot", Name: "upi.png", Content: []byte("png-bytes")})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	id, _ := data["delegate_id"].(string)
	if !strings.HasPrefix(id, "DEL-") {
		t.Errorf("delegate_id = %q, want DEL- prefix", id)
	}

	if store.UploadCount() != 1 || store.Uploads[0].Dir != "delegates" {
		t.Errorf("unexpected uploads: %+v", store.Uploads)
	}
	if notifier.CallCount() != 1 {
		t.Fatalf("expected 1 confirmation email, got %d", notifier.CallCount())
	}
	if got := notifier.Calls[0].Params["tier_price"]; got != "250" {
		t.Errorf("email tier_price = %q, want 250", got)
	}
}

func TestCreateDelegate_PaidTierRequiresScreenshot(t *testing.T) {
	app, _, store, notifier := newDelegateApp(t)

	req := testutil.MultipartRequest(t, "/api/delegates/", validDelegateForm(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if store.UploadCount() != 0 || notifier.CallCount() != 0 {
		t.Error("rejected submission must not upload or email")
	}
}

func TestCreateDelegate_UnknownTier(t *testing.T) {
	app, _, _, _ := newDelegateApp(t)

	form := validDelegateForm()
	form["tier_id"] = "diamond"
	resp, err := app.Test(testutil.MultipartRequest(t, "/api/delegates/", form, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestCreateDelegate_StrictPhoneRejected(t *testing.T) {
	app, _, _, _ := newDelegateApp(t)

	form := validDelegateForm()
	form["phone"] = "98123 45678" // spaces are fine on lenient forms, not here
	resp, err := app.Test(testutil.MultipartRequest(t, "/api/delegates/", form, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	errs, _ := body["errors"].(map[string]interface{})
	if _, ok := errs["Phone"]; !ok {
		t.Errorf("expected a Phone validation error, got %v", body["errors"])
	}
}
