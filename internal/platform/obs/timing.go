package obs

import (
	"log"
	"time"
)

// Time logs the duration and outcome of a named operation when the returned
// function runs. Intended for defer at the top of external API calls:
//
//	defer obs.Time("google.ComputeRoute")(&err)
//
// The CLI silences the log package unless --verbose is set, so these lines
// never pollute report output.
func Time(name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("op=%s dur=%dms err=%v", name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("op=%s dur=%dms", name, dur.Milliseconds())
	}
}
