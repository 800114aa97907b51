package endpoint

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ihvn/medix/middleware"
	"gorm.io/gorm"

	"github.com/ihvn/medix/util"
)

// appointmentTimeLayout is the wall-clock format accepted on booking forms.
const appointmentTimeLayout = "2006-01-02T15:04:05"

// getDBOrAbort fetches the DB handle injected by DatabaseMiddleware and
// responds with a server error when it is missing. Callers must return when
// nil is returned.
func getDBOrAbort(c *gin.Context) *gorm.DB {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database connection not available",
			Err: fmt.Errorf("db is nil"),
		})
	}
	return db
}

// parseIDParam parses the :id route parameter. A malformed id is reported as
// not found so the client cannot distinguish bad ids from missing records.
func parseIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "Record not found",
			Err: fmt.Errorf("invalid id %q", raw),
		})
		return 0, false
	}
	return uint(id), true
}

// validAppointmentTime reports whether the value parses in the accepted
// booking layout.
func validAppointmentTime(value string) bool {
	_, err := time.Parse(appointmentTimeLayout, value)
	return err == nil
}

// parseDoctorFilter reads the optional doctor_id query parameter.
func parseDoctorFilter(c *gin.Context) (uint, bool) {
	raw := c.Query("doctor_id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
