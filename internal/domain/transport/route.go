package transport

import (
	"fmt"
	"strings"
	"time"
)

// Route is one bus route. MonthlyFee is minor currency units and feeds
// invoice generation; capacity caps active assignments.
type Route struct {
	id            uint
	name          string
	vehicleNumber string
	driverName    string
	driverPhone   string
	capacity      int
	monthlyFee    int64
	stops         []string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewRoute(name, vehicleNumber, driverName, driverPhone string, capacity int, monthlyFee int64, stops []string) (*Route, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("route name is required")
	}
	if strings.TrimSpace(vehicleNumber) == "" {
		return nil, fmt.Errorf("vehicle number is required")
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("capacity must be positive")
	}
	if monthlyFee < 0 {
		return nil, fmt.Errorf("monthly fee cannot be negative")
	}
	if len(stops) == 0 {
		return nil, fmt.Errorf("at least one stop is required")
	}

	now := time.Now()
	return &Route{
		name:          strings.TrimSpace(name),
		vehicleNumber: strings.TrimSpace(vehicleNumber),
		driverName:    strings.TrimSpace(driverName),
		driverPhone:   strings.TrimSpace(driverPhone),
		capacity:      capacity,
		monthlyFee:    monthlyFee,
		stops:         stops,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

type RouteData struct {
	ID            uint
	Name          string
	VehicleNumber string
	DriverName    string
	DriverPhone   string
	Capacity      int
	MonthlyFee    int64
	Stops         []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructRoute(data RouteData) (*Route, error) {
	if data.ID == 0 {
		return nil, fmt.Errorf("route ID cannot be zero")
	}
	return &Route{
		id:            data.ID,
		name:          data.Name,
		vehicleNumber: data.VehicleNumber,
		driverName:    data.DriverName,
		driverPhone:   data.DriverPhone,
		capacity:      data.Capacity,
		monthlyFee:    data.MonthlyFee,
		stops:         data.Stops,
		createdAt:     data.CreatedAt,
		updatedAt:     data.UpdatedAt,
	}, nil
}

func (r *Route) ID() uint              { return r.id }
func (r *Route) Name() string          { return r.name }
func (r *Route) VehicleNumber() string { return r.vehicleNumber }
func (r *Route) DriverName() string    { return r.driverName }
func (r *Route) DriverPhone() string   { return r.driverPhone }
func (r *Route) Capacity() int         { return r.capacity }
func (r *Route) MonthlyFee() int64     { return r.monthlyFee }
func (r *Route) CreatedAt() time.Time  { return r.createdAt }
func (r *Route) UpdatedAt() time.Time  { return r.updatedAt }

func (r *Route) Stops() []string {
	out := make([]string, len(r.stops))
	copy(out, r.stops)
	return out
}

func (r *Route) HasStop(stop string) bool {
	for _, s := range r.stops {
		if strings.EqualFold(s, stop) {
			return true
		}
	}
	return false
}

// HasCapacity reports whether one more student fits given the current
// active assignment count.
func (r *Route) HasCapacity(activeAssignments int64) bool {
	return activeAssignments < int64(r.capacity)
}

func (r *Route) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("route ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("route ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Route) Update(name, vehicleNumber, driverName, driverPhone string, capacity int, monthlyFee int64, stops []string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("route name is required")
	}
	if capacity <= 0 {
		return fmt.Errorf("capacity must be positive")
	}
	if len(stops) == 0 {
		return fmt.Errorf("at least one stop is required")
	}
	r.name = strings.TrimSpace(name)
	r.vehicleNumber = strings.TrimSpace(vehicleNumber)
	r.driverName = strings.TrimSpace(driverName)
	r.driverPhone = strings.TrimSpace(driverPhone)
	r.capacity = capacity
	r.monthlyFee = monthlyFee
	r.stops = stops
	r.updatedAt = time.Now()
	return nil
}
