package dto

// RequestListDTO is the doctor-facing review projection of a request.
type RequestListDTO struct {
	ID            string `json:"id"`
	PatientName   string `json:"patientName"`
	PatientVID    string `json:"patientVID"`
	RequestedDate string `json:"requestedDate"`
	RequestedTime string `json:"requestedTime"`
	PreferredType string `json:"preferredType"`
	Symptoms      string `json:"symptoms"`
	Urgency       string `json:"urgency"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}
