package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const welcomePage = `<h1>The Aura server is ready to answer your requests!</h1>
<ul>
   <li>/ welcome message</li>
   <li>/accounts/id lists the accounts of the user with identifier id</li>
   <li>/swagger API documentation</li>
</ul>
`

func Welcome(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(welcomePage))
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
