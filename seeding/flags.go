package seeding

import "time"

// Derived flags over a record's stage. These are evaluated from the status
// tabs, the table sort comparators and the CSV export, and all call sites
// must go through these predicates instead of repeating membership lists.

// DMSent reports whether outreach has been sent: every stage except listed.
// Rejected influencers were contacted before rejection, so they count.
func DMSent(s Stage) bool {
	if s == StageRejected {
		return true
	}
	return IsReachedStage(s, StageContacted)
}

// ResponseReceived reports whether the influencer answered the outreach:
// every stage except listed and contacted. A rejection is a response.
func ResponseReceived(s Stage) bool {
	if s == StageRejected {
		return true
	}
	return IsReachedStage(s, StageAccepted)
}

// IsAccepted reports acceptance either by the accepted_at timestamp or by
// forward stage membership. The two normally agree; the timestamp keeps
// records accepted before the stage enum was introduced counted.
func IsAccepted(s Stage, acceptedAt *time.Time) bool {
	if acceptedAt != nil {
		return true
	}
	return IsReachedStage(s, StageAccepted)
}

// IsShipped reports whether product has been shipped to the influencer.
func IsShipped(s Stage) bool {
	return IsReachedStage(s, StageShipped)
}
