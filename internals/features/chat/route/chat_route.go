package route

import (
	"github.com/gofiber/fiber/v2"

	chatController "utsav_backend/internals/features/chat/controller"
)

func ChatRoutes(api fiber.Router) {
	ctrl := chatController.NewChatController()
	api.Post("/", ctrl.Chat)
}
