package server

import (
	"fmt"
	"strings"
	"sync/atomic"

	"fvg-dashboard/src/logger"
	"fvg-dashboard/src/models"
	"fvg-dashboard/src/utils"
	"fvg-dashboard/src/view"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// DashboardServer
// -----------------------------------------------------------------------------

type DashboardServer struct {
	Config     *models.MConfig
	Logger     *logger.Logger
	engine     *gin.Engine
	controller *view.Controller
	sessions   *utils.SessionTracker

	// WebSocket clients. The map is owned by the hub goroutine;
	// clientCount mirrors its size for handlers.
	clients     map[*Client]struct{}
	clientCount atomic.Int64
	broadcast   chan *models.MViewSnapshot // Strongly typed and Buffered Queue
	register    chan *Client
	unregister  chan *Client
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewDashboardServer(cfg *models.MConfig, controller *view.Controller, sessions *utils.SessionTracker, log *logger.Logger) *DashboardServer {
	// Set Gin mode
	if strings.ToUpper(cfg.LogLevel) != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &DashboardServer{
		Config:     cfg,
		Logger:     log,
		engine:     gin.Default(),
		controller: controller,
		sessions:   sessions,
		clients:    make(map[*Client]struct{}),
		// Buffered channel so transitions never block on slow consumers
		broadcast:  make(chan *models.MViewSnapshot, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}

	// Add CORS Middleware
	s.engine.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if strings.HasPrefix(origin, "http://127.0.0.1:") || strings.HasPrefix(origin, "http://localhost:") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	s.setupRoutes()
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *DashboardServer) setupRoutes() {
	// Dashboard page
	s.engine.GET("/", s.getPage)

	// REST API endpoints
	s.engine.GET("/api/table", s.getTable)
	s.engine.GET("/api/chart", s.getChart)
	s.engine.GET("/api/health", s.getHealth)
	s.engine.GET("/api/config", s.getConfig)

	// WebSocket endpoint
	s.engine.GET("/ws", s.handleWebSocket)
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

func (s *DashboardServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
	s.Logger.Info("Starting dashboard server on %s", addr)

	go s.runHub()

	return s.engine.Run(addr)
}

// -----------------------------------------------------------------------------

func (s *DashboardServer) Stop() error {
	close(s.broadcast)
	close(s.register)
	close(s.unregister)
	return nil
}

// -----------------------------------------------------------------------------
// Route Handlers
// -----------------------------------------------------------------------------

func (s *DashboardServer) getPage(c *gin.Context) {
	c.Data(200, "text/html; charset=utf-8", []byte(dashboardPage))
}

// -----------------------------------------------------------------------------

func (s *DashboardServer) getTable(c *gin.Context) {
	snap := s.controller.Snapshot("INITIAL")
	c.JSON(200, gin.H{
		"loading": snap.LoadingSummary,
		"table":   snap.Table,
	})
}

// -----------------------------------------------------------------------------

func (s *DashboardServer) getChart(c *gin.Context) {
	snap := s.controller.Snapshot("INITIAL")
	c.JSON(200, gin.H{
		"selected_pair": snap.SelectedPair,
		"chart":         snap.Chart,
	})
}

// -----------------------------------------------------------------------------

func (s *DashboardServer) getHealth(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":          "ok",
		"connections":     s.clientCount.Load(),
		"loading_summary": s.controller.LoadingSummary(),
		"market_open":     s.sessions.AnySessionOpen(),
	})
}

// -----------------------------------------------------------------------------

func (s *DashboardServer) getConfig(c *gin.Context) {
	c.JSON(200, gin.H{
		"timeframes":   s.Config.Scanner.Timeframes,
		"scanner_base": s.Config.Scanner.BaseURL,
	})
}
