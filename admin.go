// admin.go - admin dashboard over landing-page cycle telemetry
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/gridpath/internal/logger"
	"github.com/Zachkp/gridpath/internal/store"
)

const recentCycleLimit = 50

// Initialize admin system with privacy considerations
func (a *app) initAdminToken() {
	a.adminToken = generateAdminToken()
	a.hashingSalt = generateAdminToken() // Use for IP hashing

	logger.Log.Info("Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		logger.Log.Debugf("Admin token (dev only): %s", a.adminToken)
	}
}

func generateAdminToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		logger.Log.Fatal("Failed to generate admin token: ", err)
	}
	return hex.EncodeToString(bytes)
}

// Hash IP address before it reaches the logs (consistent per IP)
func (a *app) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + a.hashingSalt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// Middleware to check admin authentication
func (a *app) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (a *app) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.cfg.AdminPassword)) == 1
	return userOK && passOK
}

// Setup all admin routes
func (a *app) setupAdminRoutes(r *gin.Engine) {
	// Admin login page
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	// Admin login handler
	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		if a.checkCredentials(username, password) {
			// Secure cookie (24 hours)
			c.SetCookie("admin_token", a.adminToken, 3600*24, "/admin", "", false, true)
			logger.Log.Infof("Admin login successful from %s", a.hashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
		logger.Log.Warnf("Failed admin login attempt from %s", a.hashIP(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"error": "Invalid credentials",
		})
	})

	// Admin logout
	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie("admin_token", "", -1, "/admin", "", false, true)
		logger.Log.Infof("Admin logout from %s", a.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	// Protected admin routes group
	adminGroup := r.Group("/admin")
	adminGroup.Use(a.adminAuthMiddleware())

	// Admin dashboard
	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context(), time.Now(), recentCycleLimit)
		if err != nil {
			logger.Log.WithError(err).Error("Error loading admin stats")
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
		})
	})

	// Admin API endpoint for HTMX/AJAX
	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context(), time.Now(), recentCycleLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	// Single cycle by id
	adminGroup.GET("/cycles/:id", func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
			return
		}
		cycle, err := a.store.Cycle(c.Request.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cycle not found"})
			return
		}
		if err != nil {
			logger.Log.WithError(err).Error("Error loading cycle")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cycle"})
			return
		}
		c.JSON(http.StatusOK, cycle)
	})

	// Delete cycles older than ?days= (default 90)
	adminGroup.DELETE("/cycles", func(c *gin.Context) {
		days, err := strconv.Atoi(c.DefaultQuery("days", "90"))
		if err != nil || days < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a non-negative integer"})
			return
		}
		cutoff := time.Now().Add(-time.Duration(days) * 24 * time.Hour)
		deleted, err := a.store.PurgeBefore(c.Request.Context(), cutoff)
		if err != nil {
			logger.Log.WithError(err).Error("Error purging cycles")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to purge cycles"})
			return
		}
		logger.Log.Infof("Purged %d cycles older than %d days", deleted, days)
		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
	})

	// Admin statistics export (for backups or analysis)
	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context(), time.Now(), recentCycleLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Set headers for file download
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")

		logger.Log.Infof("Admin stats exported by %s", a.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}
