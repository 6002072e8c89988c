package entities

// DriverStatus represents a delivery partner's availability
type DriverStatus string

const (
	DriverStatusAvailable DriverStatus = "available"
	DriverStatusBusy      DriverStatus = "busy"
	DriverStatusOffline   DriverStatus = "offline"
)

// Driver represents a delivery partner
type Driver struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Phone              string       `json:"phone"`
	VehicleType        string       `json:"vehicleType"`
	Rating             float64      `json:"rating"`
	TotalDeliveries    int          `json:"totalDeliveries"`
	Status             DriverStatus `json:"status"`
	Location           string       `json:"location"`
	Incidents          []string     `json:"incidents"`
	AvgDeliveryMinutes int          `json:"avgDeliveryMinutes"`
	CancellationRate   float64      `json:"cancellationRate"`
	ExonerationLog     []string     `json:"exonerationLog"`
}
