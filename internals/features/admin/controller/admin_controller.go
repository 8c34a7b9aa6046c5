package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"utsav_backend/internals/configs"
	"utsav_backend/internals/features/admin/dto"
	concertModel "utsav_backend/internals/features/concerts/model"
	delegateModel "utsav_backend/internals/features/delegates/model"
	registrationModel "utsav_backend/internals/features/registrations/model"
	helper "utsav_backend/internals/helpers"
)

// URLSigner resolves private object keys to short-lived GET URLs.
type URLSigner interface {
	SignedURL(key string, ttl time.Duration) (string, error)
}

const signedURLTTL = 15 * time.Minute

type AdminController struct {
	DB     *gorm.DB
	Signer URLSigner
}

func NewAdminController(db *gorm.DB, signer URLSigner) *AdminController {
	return &AdminController{DB: db, Signer: signer}
}

var errNoSecret = errors.New("admin secret not configured")

// checkPassword verifies the shared dashboard secret. A bcrypt hash in
// ADMIN_PASSWORD_HASH takes precedence; otherwise ADMIN_PASSWORD is
// compared with plain equality, matching the original dashboard.
func checkPassword(password string) (bool, error) {
	if configs.AdminPasswordHash != "" {
		err := bcrypt.CompareHashAndPassword([]byte(configs.AdminPasswordHash), []byte(password))
		return err == nil, nil
	}
	if configs.AdminPassword == "" {
		return false, errNoSecret
	}
	return password == configs.AdminPassword, nil
}

// POST /api/admin
func (ctrl *AdminController) HandleAction(c *fiber.Ctx) error {
	var body dto.AdminRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}

	ok, err := checkPassword(body.Password)
	if err != nil {
		log.Printf("[ADMIN] %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server misconfigured")
	}
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid password / Access Denied")
	}

	return ctrl.dispatch(c, body.Action, body.EventID)
}

func (ctrl *AdminController) dispatch(c *fiber.Ctx, action, eventID string) error {
	switch action {
	case "counts":
		return ctrl.registrationCounts(c)
	case "concert_count":
		return ctrl.tableCount(c, &concertModel.ConcertBooking{})
	case "delegate_count":
		return ctrl.tableCount(c, &delegateModel.Delegate{})
	case "concert_bookings":
		return ctrl.concertBookings(c)
	case "delegates":
		return ctrl.delegates(c)
	default:
		return ctrl.registrations(c, eventID)
	}
}

// counts: fold registrations.event_id into {event_id: n}; events with
// zero registrations are simply absent.
func (ctrl *AdminController) registrationCounts(c *fiber.Ctx) error {
	var eventIDs []string
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&registrationModel.Registration{}).
		Pluck("event_id", &eventIDs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch counts")
	}

	counts := make(map[string]int, len(eventIDs))
	for _, id := range eventIDs {
		counts[id]++
	}
	return c.JSON(fiber.Map{"counts": counts})
}

func (ctrl *AdminController) tableCount(c *fiber.Ctx, m interface{}) error {
	var count int64
	if err := ctrl.DB.WithContext(c.UserContext()).Model(m).Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch count")
	}
	return c.JSON(fiber.Map{"count": count})
}

func (ctrl *AdminController) concertBookings(c *fiber.Ctx) error {
	var bookings []concertModel.ConcertBooking
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch bookings")
	}

	ctrl.signBookings(bookings)
	return c.JSON(fiber.Map{"bookings": bookings})
}

// the concert bucket is private: keys become signed URLs here
func (ctrl *AdminController) signBookings(bookings []concertModel.ConcertBooking) {
	if ctrl.Signer == nil {
		return
	}
	for i := range bookings {
		key := bookings[i].PaymentScreenshotKey
		if key == nil || *key == "" {
			continue
		}
		signed, err := ctrl.Signer.SignedURL(*key, signedURLTTL)
		if err != nil {
			log.Printf("[ADMIN] sign %s: %v", *key, err)
			continue
		}
		bookings[i].PaymentScreenshotKey = &signed
	}
}

func (ctrl *AdminController) delegates(c *fiber.Ctx) error {
	var delegates []delegateModel.Delegate
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("created_at desc").
		Find(&delegates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch delegates")
	}
	return c.JSON(fiber.Map{"delegates": delegates})
}

func (ctrl *AdminController) registrations(c *fiber.Ctx, eventID string) error {
	q := ctrl.DB.WithContext(c.UserContext()).Order("created_at desc")
	if eventID != "" {
		q = q.Where("event_id = ?", eventID)
	}

	var registrations []registrationModel.Registration
	if err := q.Find(&registrations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}
	return c.JSON(fiber.Map{"registrations": registrations})
}

/* =======================================================================
   JWT session (dashboard convenience)
   The POST surface above stays password-per-request; login just spares
   the dashboard from holding the password in memory per click.
======================================================================= */

// POST /api/admin/login
func (ctrl *AdminController) Login(c *fiber.Ctx) error {
	var body dto.AdminLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}

	ok, err := checkPassword(body.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server misconfigured")
	}
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid password / Access Denied")
	}
	if configs.AdminJWTSecret == "" {
		return helper.Error(c, fiber.StatusInternalServerError, "Admin sessions not configured")
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.AdminJWTSecret))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	return helper.Success(c, "Login successful", fiber.Map{"token": token})
}

// Bearer-token variants of the read actions, mounted behind AdminJWT.
// Unlike the dashboard POST surface these are paginated.

const (
	defaultPerPage = 50
	maxPerPage     = 500
)

// GET /api/admin/counts
func (ctrl *AdminController) GetCounts(c *fiber.Ctx) error {
	return ctrl.registrationCounts(c)
}

// GET /api/admin/registrations?event_id=&page=&per_page=
func (ctrl *AdminController) GetRegistrations(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, defaultPerPage, maxPerPage)
	eventID := c.Query("event_id")

	base := ctrl.DB.WithContext(c.UserContext()).Model(&registrationModel.Registration{})
	if eventID != "" {
		base = base.Where("event_id = ?", eventID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}

	q := ctrl.DB.WithContext(c.UserContext()).Order("created_at desc").
		Limit(p.Limit()).Offset(p.Offset())
	if eventID != "" {
		q = q.Where("event_id = ?", eventID)
	}
	var registrations []registrationModel.Registration
	if err := q.Find(&registrations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}
	return c.JSON(fiber.Map{"registrations": registrations, "meta": helper.BuildPageMeta(total, p)})
}

// GET /api/admin/delegates?page=&per_page=
func (ctrl *AdminController) GetDelegates(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, defaultPerPage, maxPerPage)

	var total int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&delegateModel.Delegate{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch delegates")
	}

	var delegates []delegateModel.Delegate
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("created_at desc").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&delegates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch delegates")
	}
	return c.JSON(fiber.Map{"delegates": delegates, "meta": helper.BuildPageMeta(total, p)})
}

// GET /api/admin/concert-bookings?page=&per_page=
func (ctrl *AdminController) GetConcertBookings(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, defaultPerPage, maxPerPage)

	var total int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&concertModel.ConcertBooking{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch bookings")
	}

	var bookings []concertModel.ConcertBooking
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("created_at desc").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&bookings).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch bookings")
	}

	ctrl.signBookings(bookings)
	return c.JSON(fiber.Map{"bookings": bookings, "meta": helper.BuildPageMeta(total, p)})
}
