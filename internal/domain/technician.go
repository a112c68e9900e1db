package domain

// TechnicianStatus enumerates duty states.
type TechnicianStatus string

const (
	TechnicianStatusAvailable TechnicianStatus = "available"
	TechnicianStatusBusy      TechnicianStatus = "busy"
	TechnicianStatusOffDuty   TechnicianStatus = "off_duty"
)

// Valid reports whether the status is a known value.
func (s TechnicianStatus) Valid() bool {
	switch s {
	case TechnicianStatusAvailable, TechnicianStatusBusy, TechnicianStatusOffDuty:
		return true
	}
	return false
}

// Technician is a notifiable field engineer. ActiveRequests is a manually
// maintained display counter, not reconciled against actual assignments.
type Technician struct {
	ID             int64
	Name           string
	Email          string
	Phone          *string
	Specialty      string
	Status         TechnicianStatus
	ActiveRequests int
}
