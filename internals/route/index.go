package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "utsav_backend/internals/features/admin/route"
	catalogRoute "utsav_backend/internals/features/catalog/route"
	chatRoute "utsav_backend/internals/features/chat/route"
	concertRoute "utsav_backend/internals/features/concerts/route"
	delegateRoute "utsav_backend/internals/features/delegates/route"
	mailerRoute "utsav_backend/internals/features/mailer/route"
	mailerService "utsav_backend/internals/features/mailer/service"
	merchRoute "utsav_backend/internals/features/merch/route"
	registrationRoute "utsav_backend/internals/features/registrations/route"
	pipeline "utsav_backend/internals/features/submission/service"
	ossHelper "utsav_backend/internals/helpers/oss"
	middlewares "utsav_backend/internals/middlewares"
)

var startTime time.Time

// Deps carries everything the routes need; main builds it once.
type Deps struct {
	DB           *gorm.DB
	PublicStore  *ossHelper.OSSService
	PrivateStore *ossHelper.OSSService
	Mailer       *mailerService.Mailer
}

func SetupRoutes(app *fiber.App, deps Deps) {
	startTime = time.Now()

	BaseRoutes(app, deps.DB)

	api := app.Group("/api")

	log.Println("[INFO] Setting up catalog routes...")
	catalogRoute.CatalogRoutes(api.Group("/catalog"))

	// submission flows share the pipeline; concerts get the private bucket
	publicPipeline := pipeline.NewPipeline(deps.DB, deps.PublicStore, deps.Mailer)
	privatePipeline := pipeline.NewPipeline(deps.DB, deps.PrivateStore, deps.Mailer)

	log.Println("[INFO] Setting up submission routes...")
	submit := middlewares.SubmitRateLimiter()
	registrationRoute.RegistrationRoutes(api.Group("/registrations", submit), publicPipeline)
	delegateRoute.DelegateRoutes(api.Group("/delegates", submit), publicPipeline)
	concertRoute.ConcertRoutes(api.Group("/concerts", submit), privatePipeline)
	merchRoute.MerchRoutes(api.Group("/merch", submit), publicPipeline)
	mailerRoute.MailerRoutes(api.Group("/", submit), deps.Mailer)

	log.Println("[INFO] Setting up admin routes...")
	adminRoute.AdminRoutes(api.Group("/admin", middlewares.AdminRateLimiter()), deps.DB, deps.PrivateStore)

	log.Println("[INFO] Setting up chat relay...")
	chatRoute.ChatRoutes(api.Group("/chat", middlewares.ChatRateLimiter()))
}
