package main

import (
	"folio-cms/pkg/config"
	app "folio-cms/services/content/internal/app"

	_ "folio-cms/services/content/docs" // Swagger docs
)

// @title           Folio CMS Content API
// @version         1.0
// @description     Posts, projects and service pages with their content, gallery, downloads, FAQs, recommendations and SEO
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
