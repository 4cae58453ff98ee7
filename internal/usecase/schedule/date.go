package schedule

import (
	"time"

	"cloud.google.com/go/civil"
)

func civilDate(t time.Time, loc *time.Location) civil.Date {
	return civil.DateOf(t.In(loc))
}
