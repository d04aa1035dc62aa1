// Package timezone pins all booking and billing timestamps to a single
// configured location so that check-in dates and nightly boundaries agree
// across the API, the database, and generated invoices.
//
// Usage:
//
//	now := timezone.Now()                   // current time in the hotel timezone
//	local := timezone.ToAppTime(someTime)   // convert any time to the hotel timezone
//	s := timezone.Format(t, "2006-01-02")   // format in the hotel timezone
//	t, err := timezone.Parse("2006-01-02", "2026-03-01")
//	loc := timezone.GetLocation()
//
// The location is set via the APP_TIMEZONE environment variable using an
// IANA name ("UTC", "Asia/Kolkata", "Asia/Jakarta") and is initialized when
// the package is imported.
package timezone
