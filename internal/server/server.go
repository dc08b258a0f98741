package server

import (
	"ctchen222/taskboard/internal/api/controller"
	"ctchen222/taskboard/internal/api/middleware"
	"ctchen222/taskboard/internal/session"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	_ "ctchen222/taskboard/internal/validator" // registers custom binding rules
)

// Server owns the gin engine and its route table.
type Server struct {
	engine *gin.Engine
}

// NewServer wires the controllers into a gin engine. Task routes and the
// board page sit behind the session gate; registration, login and the static
// assets do not.
func NewServer(userCtl *controller.UserController, taskCtl *controller.TaskController, sessions *session.Manager, webDir string) *Server {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	engine.POST("/register", userCtl.Register)
	engine.POST("/login", userCtl.Login)

	authed := engine.Group("", middleware.RequireSession(sessions))
	authed.GET("/logout", userCtl.Logout)

	authed.GET("/tasks", taskCtl.List)
	authed.POST("/tasks", taskCtl.Create)

	// The router cannot hold a static child ("move", "clear") next to a
	// wildcard (":id") at the same position, so mutations share a catch-all
	// per method and dispatch on the remainder of the path.
	authed.PUT("/tasks/*rest", func(c *gin.Context) {
		rest := strings.Trim(c.Param("rest"), "/")
		// both /tasks/:id and the /tasks/move/:id route the board client calls
		if id, ok := strings.CutPrefix(rest, "move/"); ok {
			taskCtl.Move(c, id)
			return
		}
		taskCtl.Move(c, rest)
	})
	authed.DELETE("/tasks/*rest", func(c *gin.Context) {
		rest := strings.Trim(c.Param("rest"), "/")
		if status, ok := strings.CutPrefix(rest, "clear/"); ok {
			taskCtl.ClearColumn(c, status)
			return
		}
		taskCtl.Delete(c, rest)
	})

	// The board is the only page that requires a session; an anonymous hit
	// lands on the login page via the gate's redirect branch.
	authed.GET("/board.html", func(c *gin.Context) {
		c.File(filepath.Join(webDir, "board.html"))
	})

	engine.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(webDir, "login.html"))
	})
	engine.NoRoute(gin.WrapH(http.FileServer(http.Dir(webDir))))

	return &Server{engine: engine}
}

// Engine exposes the underlying gin engine for http.Server and tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
