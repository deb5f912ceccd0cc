package models

// AppointmentRequest is the patient's ask for a consultation. Party fields are
// denormalized copies taken at request time; they are not kept in sync with the
// user table afterwards.
//
// The full list persists as one JSON array under a single store key, so every
// field lives flat on the struct and resolution fields stay empty until the
// transition that fills them.
type AppointmentRequest struct {
	ID string `json:"id"`

	PatientID    string `json:"patientId"`
	PatientName  string `json:"patientName"`
	PatientVID   string `json:"patientVID"`
	PatientPhone string `json:"patientPhone"`

	DoctorID     string `json:"doctorId"`
	DoctorName   string `json:"doctorName"`
	HospitalID   string `json:"hospitalId"`
	HospitalName string `json:"hospitalName"`
	Department   string `json:"department"`

	RequestedDate string `json:"requestedDate"`
	RequestedTime string `json:"requestedTime"`
	PreferredType string `json:"preferredType"`

	Symptoms string `json:"symptoms"`
	Urgency  string `json:"urgency"`

	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`

	// Set only by the transition that resolves the request.
	DoctorNotes     string `json:"doctorNotes,omitempty"`
	RejectionReason string `json:"rejectionReason,omitempty"`
	ScheduledDate   string `json:"scheduledDate,omitempty"`
	ScheduledTime   string `json:"scheduledTime,omitempty"`
	MeetingLink     string `json:"meetingLink,omitempty"`
	Location        string `json:"location,omitempty"`
}

// Consultation types
const (
	ConsultVideoCall = "video_call"
	ConsultAudioCall = "audio_call"
	ConsultInPerson  = "in_person"
)

// Urgency levels
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

func IsValidConsultType(t string) bool {
	switch t {
	case ConsultVideoCall, ConsultAudioCall, ConsultInPerson:
		return true
	}
	return false
}

func IsValidUrgency(u string) bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}
