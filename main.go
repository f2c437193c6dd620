package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/gridpath/internal/logger"
	"github.com/Zachkp/gridpath/internal/sequencer"
	"github.com/Zachkp/gridpath/internal/store"
)

type app struct {
	cfg   Config
	store *store.Store
	clock sequencer.Clock

	adminToken  string
	hashingSalt string
}

func newApp(cfg Config, db *store.Store) *app {
	a := &app{cfg: cfg, store: db, clock: sequencer.RealClock{}}
	a.initAdminToken()
	return a
}

func main() {
	logger.Init()
	cfg := loadConfig()

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Log.Fatal("Failed to open database: ", err)
	}
	defer db.Close()

	r := newApp(cfg, db).router()

	logger.Log.Infof("Portfolio running on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Error("Server stopped: ", err)
	}
}

func (a *app) router() *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"aboutMeContent":      AboutMe,
			"projectOneContent":   ProjectOne,
			"projectTwoContent":   ProjectTwo,
			"projectThreeContent": ProjectThree,
			"projectFourContent":  ProjectFour,
			"cellSize":            a.cfg.CellSize,
		})
	})

	// Work experience content
	r.GET("/work-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "timeline.html", gin.H{
			"heading": "Work Experience",
			"entries": WorkTimeline,
		})
	})

	// Education content
	r.GET("/education-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "timeline.html", gin.H{
			"heading": "Education",
			"entries": EducationTimeline,
		})
	})

	// Same tables as JSON for the timeline components
	r.GET("/api/timeline", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"work":      WorkTimeline,
			"education": EducationTimeline,
		})
	})

	a.setupGridRoutes(r)
	a.setupAdminRoutes(r)
	return r
}
