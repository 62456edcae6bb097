// Package docs serves the OpenAPI document and the Swagger UI that renders it.
package docs

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	DocumentPath = "/openapi/documentation.yaml"
	UIPath       = "/swagger"
)

//go:embed documentation.yaml
var document []byte

// Register mounts the OpenAPI document and the Swagger UI on r.
// GET /swagger and /swagger/ both end up on /swagger/index.html.
func Register(r gin.IRoutes) {
	r.GET(DocumentPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", document)
	})

	ui := ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL(DocumentPath))
	r.GET(UIPath+"/*any", func(c *gin.Context) {
		if c.Param("any") == "/" {
			c.Redirect(http.StatusFound, UIPath+"/index.html")
			return
		}
		ui(c)
	})
}
