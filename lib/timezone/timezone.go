package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/Argentina/Buenos_Aires")
	if err != nil {
		panic(err)
	}
}

// force timezone to be in Buenos Aires regardless of where the bot
// is hosted, since posted match times are meant for an Argentinian
// audience.
func Now() time.Time {
	return time.Now().In(Location)
}
