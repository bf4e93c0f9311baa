package http

import (
	nethttp "net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"github.com/tiered-support/support-desk/web"
)

// maxBodyBytes caps ticket form submissions.
const maxBodyBytes = 1 << 20

// NewApp builds the fiber application with the embedded view engine.
func NewApp(appName string, logger *zap.Logger) *fiber.App {
	engine := html.NewFileSystem(nethttp.FS(web.Views()), ".html")
	engine.AddFunc("lower", strings.ToLower)
	engine.AddFunc("inc", func(i int) int { return i + 1 })

	return fiber.New(fiber.Config{
		AppName:               appName,
		Views:                 engine,
		BodyLimit:             maxBodyBytes,
		ErrorHandler:          ErrorHandler(logger),
		DisableStartupMessage: true,
	})
}

// StaticHandler serves the embedded CSS and JavaScript.
func StaticHandler() fiber.Handler {
	return filesystem.New(filesystem.Config{
		Root:   nethttp.FS(web.Static()),
		MaxAge: 3600,
	})
}
