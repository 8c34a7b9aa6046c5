package controller

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"

	"utsav_backend/internals/features/submission/mock"
	pipeline "utsav_backend/internals/features/submission/service"
	"utsav_backend/internals/helpers/testutil"
)

func TestResolveCart(t *testing.T) {
	cases := []struct {
		name      string
		itemsJSON string
		wantTotal int
		wantErr   string
	}{
		{
			name:      "single tee",
			itemsJSON: `[{"item_id":"tee-classic","size":"M","quantity":2}]`,
			wantTotal: 798,
		},
		{
			name:      "mixed cart",
			itemsJSON: `[{"item_id":"hoodie","size":"L","quantity":1},{"item_id":"cap","size":"Free","quantity":1}]`,
			wantTotal: 1198,
		},
		{
			name:      "quantity clamped to five",
			itemsJSON: `[{"item_id":"cap","size":"free","quantity":50}]`,
			wantTotal: 5 * 299,
		},
		{
			name:      "zero quantity bumped to one",
			itemsJSON: `[{"item_id":"cap","size":"Free","quantity":0}]`,
			wantTotal: 299,
		},
		{
			name:      "unknown item",
			itemsJSON: `[{"item_id":"mug","size":"Free","quantity":1}]`,
			wantErr:   "unknown item",
		},
		{
			name:      "size not offered",
			itemsJSON: `[{"item_id":"hoodie","size":"S","quantity":1}]`,
			wantErr:   "not available",
		},
		{
			name:      "empty cart",
			itemsJSON: `[]`,
			wantErr:   "empty",
		},
		{
			name:      "garbage payload",
			itemsJSON: `{"item_id":`,
			wantErr:   "not valid JSON",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items, total, err := resolveCart(tc.itemsJSON)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("err = %v, want containing %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveCart: %v", err)
			}
			if total != tc.wantTotal {
				t.Errorf("total = %d, want %d", total, tc.wantTotal)
			}
			for _, it := range items {
				if it.Price == 0 || it.Name == "" {
					t.Errorf("line %+v not resolved against the catalog", it)
				}
			}
		})
	}
}

func TestCreateOrder_EndToEnd(t *testing.T) {
	db, sqlMock := testutil.NewGormMock(t)
	store := &mock.Store{}
	notifier := &mock.Notifier{}
	ctrl := NewOrderController(pipeline.NewPipeline(db, store, notifier))

	app := fiber.New()
	app.Post("/api/merch/orders", ctrl.CreateOrder)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(`INSERT INTO "merch_orders"`).
		WithArgs(
			sqlmock.AnyArg(), // order_id
			"Priya Thomas", "priya@college.edu", "+91 98765 43210", "CUSAT",
			sqlmock.AnyArg(), // items jsonb
			1198,             // totals are priced server-side
			sqlmock.AnyArg(), // screenshot URL
			sqlmock.AnyArg(), // created_at
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectCommit()

	form := map[string]string{
		"name":        "Priya Thomas",
		"email":       "priya@college.edu",
		"phone":       "+91 98765 43210",
		"institution": "CUSAT",
		"items":       `[{"item_id":"hoodie","size":"L","quantity":1},{"item_id":"cap","size":"Free","quantity":1}]`,
	}
	req := testutil.MultipartRequest(t, "/api/merch/orders", form,
		&testutil.FilePart{Field: "payment_screenshot", Name: "upi.png", Content: []byte("png")})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	data := body["data"].(map[string]interface{})
	if id, _ := data["order_id"].(string); !strings.HasPrefix(id, "MERCH-") {
		t.Errorf("order_id = %q, want MERCH- prefix", id)
	}
	if total, _ := data["total_amount"].(float64); total != 1198 {
		t.Errorf("total_amount = %v, want 1198", data["total_amount"])
	}
	if store.UploadCount() != 1 || store.Uploads[0].Dir != "merch" {
		t.Errorf("unexpected uploads: %+v", store.Uploads)
	}
	if notifier.CallCount() != 1 || notifier.Calls[0].Params["total_amount"] != "1198" {
		t.Errorf("unexpected email calls: %+v", notifier.Calls)
	}
}

func TestCreateOrder_BadCartRejected(t *testing.T) {
	db, _ := testutil.NewGormMock(t)
	store := &mock.Store{}
	ctrl := NewOrderController(pipeline.NewPipeline(db, store, &mock.Notifier{}))

	app := fiber.New()
	app.Post("/api/merch/orders", ctrl.CreateOrder)

	form := map[string]string{
		"name":        "Priya Thomas",
		"email":       "priya@college.edu",
		"phone":       "+91 98765 43210",
		"institution": "CUSAT",
		"items":       `[{"item_id":"mug","size":"Free","quantity":1}]`,
	}
	resp, err := app.Test(testutil.MultipartRequest(t, "/api/merch/orders", form, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if store.UploadCount() != 0 {
		t.Error("rejected order must not upload")
	}
}
