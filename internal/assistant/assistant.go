package assistant

import "strings"

// Portals
const (
	PortalPatient  = "patient"
	PortalDoctor   = "doctor"
	PortalPharmacy = "pharmacy"
)

type rule struct {
	keywords []string
	reply    string
}

// Assistant is a keyword dispatch table per portal; first matching rule wins,
// no state is kept between messages.
type Assistant struct {
	rules     map[string][]rule
	fallbacks map[string]string
}

func New() *Assistant {
	return &Assistant{
		rules: map[string][]rule{
			PortalPatient: {
				{[]string{"book", "appointment"}, "To book a consultation, open Find Doctors, pick a doctor and send a request with your preferred date and time. The doctor confirms or suggests an alternative."},
				{[]string{"cancel"}, "You can cancel a pending or accepted request from My Appointments. Completed visits can no longer be cancelled."},
				{[]string{"wallet", "payment", "pay"}, "Your wallet balance is under Wallet. Top it up there and consultation fees are deducted automatically when you pay for an accepted appointment."},
				{[]string{"record", "report"}, "Your medical records appear under Health Records once your doctor uploads them. Use the download button next to an attachment to save it."},
				{[]string{"medicine", "verify", "authentic"}, "Scan or type the batch code under Verify Medicine to check it against the manufacturer catalog."},
			},
			PortalDoctor: {
				{[]string{"pending", "request"}, "Incoming appointment requests wait in your Pending queue. Accept with a confirmed slot or reject with a reason; the patient is notified either way."},
				{[]string{"accept", "schedule"}, "Accepting requires a confirmed date and time. Add a meeting link for video or audio consultations, or a location for in-person visits."},
				{[]string{"record", "upload"}, "Create a record from the patient's profile, then attach reports as files; patients see them immediately."},
			},
			PortalPharmacy: {
				{[]string{"verify", "batch", "counterfeit"}, "Enter the batch code exactly as printed. A flagged batch means it was reported counterfeit; an unknown code is not in the manufacturer catalog."},
				{[]string{"expired", "expiry"}, "Verification checks the expiry date printed in the catalog entry; expired batches must not be dispensed."},
			},
		},
		fallbacks: map[string]string{
			PortalPatient:  "I can help with booking appointments, cancellations, your wallet, health records and medicine verification. What do you need?",
			PortalDoctor:   "I can help with your pending request queue, scheduling and patient records. What do you need?",
			PortalPharmacy: "I can help with medicine batch verification. Type a batch code question to get started.",
		},
	}
}

// Reply returns the canned answer for the portal; an unknown portal gets the
// patient fallback.
func (a *Assistant) Reply(portal, message string) string {
	msg := strings.ToLower(message)

	for _, r := range a.rules[portal] {
		for _, kw := range r.keywords {
			if strings.Contains(msg, kw) {
				return r.reply
			}
		}
	}

	if fb, ok := a.fallbacks[portal]; ok {
		return fb
	}
	return a.fallbacks[PortalPatient]
}

func IsValidPortal(portal string) bool {
	switch portal {
	case PortalPatient, PortalDoctor, PortalPharmacy:
		return true
	}
	return false
}
