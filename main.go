// main.go
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ihvn/medix/config"
	"github.com/ihvn/medix/endpoint"
	"github.com/ihvn/medix/middleware"
	"github.com/ihvn/medix/model"
	"github.com/ihvn/medix/util"
	"gorm.io/gorm"
)

// newRouter wires the full route surface with the shared middleware stack.
func newRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DatabaseMiddleware(db))
	router.Use(middleware.EndpointCallLogger())

	issueToken := middleware.IssueAntiForgeryToken()
	protect := []gin.HandlerFunc{
		middleware.RateLimiter(middleware.RateLimitConfig{}),
		middleware.AntiForgery(),
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})

	router.GET("/Doctors", endpoint.ListDoctors)
	router.GET("/Doctors/Details/:id", endpoint.GetDoctorDetails)
	router.GET("/Doctors/Create", issueToken, endpoint.NewDoctorForm)
	router.POST("/Doctors/Create", append(protect, endpoint.CreateDoctor)...)
	router.GET("/Doctors/Edit/:id", issueToken, endpoint.EditDoctorForm)
	router.POST("/Doctors/Edit/:id", append(protect, endpoint.EditDoctor)...)
	router.GET("/Doctors/Delete/:id", issueToken, endpoint.ConfirmDeleteDoctor)
	router.POST("/Doctors/Delete/:id", append(protect, endpoint.DeleteDoctor)...)
	router.GET("/Doctors/BookAppointment/:id", issueToken, endpoint.BookAppointmentForm)
	router.POST("/Doctors/BookAppointment/:id", append(protect, endpoint.BookAppointment)...)

	router.GET("/Patients", endpoint.ListPatients)
	router.GET("/Patients/Details/:id", endpoint.GetPatientDetails)
	router.GET("/Patients/Create", issueToken, endpoint.NewPatientForm)
	router.POST("/Patients/Create", append(protect, endpoint.CreatePatient)...)
	router.GET("/Patients/Edit/:id", issueToken, endpoint.EditPatientForm)
	router.POST("/Patients/Edit/:id", append(protect, endpoint.EditPatient)...)
	router.GET("/Patients/Delete/:id", issueToken, endpoint.ConfirmDeletePatient)
	router.POST("/Patients/Delete/:id", append(protect, endpoint.DeletePatient)...)

	router.GET("/Appointments", endpoint.ListAppointments)

	router.GET("/Encounters", endpoint.ListEncounters)
	router.GET("/Encounters/Details/:id", endpoint.GetEncounterDetails)
	router.POST("/Encounters/Create", append(protect, endpoint.CreateEncounter)...)
	router.POST("/Encounters/Delete/:id", append(protect, endpoint.DeleteEncounter)...)

	return router
}

func main() {
	cfg := config.LoadConfig()

	db, err := config.ConnectMySQL()
	if err != nil {
		log.Fatalf("Error connecting to MySQL: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Doctor{},
		&model.Patient{},
		&model.Appointment{},
		&model.Encounter{},
		&model.Symptom{},
		&model.VitalSign{},
		&model.AuditLog{},
	); err != nil {
		log.Fatalf("Error migrating schema: %v", err)
	}
	util.SetAuditLoggerDB(db)

	// Redis backs the rate limiter and single-use token tracking. Both fail
	// open, so a missing Redis only logs a warning.
	if _, err := config.ConnectRedis(); err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
	}

	gin.SetMode(cfg.GinMode)
	router := newRouter(cfg, db)

	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
