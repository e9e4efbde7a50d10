package domain

// ServiceType represents the kind of inspection or service being booked
type ServiceType string

const (
	ServiceItpAutoturism    ServiceType = "ITP_AUTOTURISM"
	ServiceItpAutoutilitara ServiceType = "ITP_AUTOUTILITARA"
	ServiceItpMotocicleta   ServiceType = "ITP_MOTOCICLETA"
	ServiceItpRemorca       ServiceType = "ITP_REMORCA"
	ServiceTahograf         ServiceType = "VERIFICARE_TAHOGRAF"
	ServiceAltele           ServiceType = "ALTE_SERVICII"
)

// ServiceTypes all known service types, in display order.
var ServiceTypes = []ServiceType{
	ServiceItpAutoturism,
	ServiceItpAutoutilitara,
	ServiceItpMotocicleta,
	ServiceItpRemorca,
	ServiceTahograf,
	ServiceAltele,
}

// IsValid reports whether s is a known service type.
func (s ServiceType) IsValid() bool {
	for _, st := range ServiceTypes {
		if st == s {
			return true
		}
	}
	return false
}

// DefaultDuration returns the default inspection duration in minutes,
// applied when the booking request does not specify one.
func (s ServiceType) DefaultDuration() int {
	switch s {
	case ServiceItpAutoturism:
		return 30
	case ServiceItpAutoutilitara:
		return 45
	case ServiceItpMotocicleta:
		return 30
	case ServiceItpRemorca:
		return 30
	case ServiceTahograf:
		return 60
	case ServiceAltele:
		return 30
	default:
		return DefaultSlotDurationMinutes
	}
}

// Label returns the Romanian display label for the service type.
func (s ServiceType) Label() string {
	switch s {
	case ServiceItpAutoturism:
		return "ITP Autoturism"
	case ServiceItpAutoutilitara:
		return "ITP Autoutilitară"
	case ServiceItpMotocicleta:
		return "ITP Motocicletă"
	case ServiceItpRemorca:
		return "ITP Remorcă"
	case ServiceTahograf:
		return "Verificare tahograf"
	case ServiceAltele:
		return "Alte servicii"
	default:
		return string(s)
	}
}

// VehicleCategory represents the registration category of the vehicle
type VehicleCategory string

const (
	VehicleAutoturism    VehicleCategory = "AUTOTURISM"
	VehicleAutoutilitara VehicleCategory = "AUTOUTILITARA"
	VehicleMotocicleta   VehicleCategory = "MOTOCICLETA"
	VehicleRemorca       VehicleCategory = "REMORCA"
	VehicleAtv           VehicleCategory = "ATV"
)

// VehicleCategories all known vehicle categories.
var VehicleCategories = []VehicleCategory{
	VehicleAutoturism,
	VehicleAutoutilitara,
	VehicleMotocicleta,
	VehicleRemorca,
	VehicleAtv,
}

// IsValid reports whether c is a known vehicle category.
func (c VehicleCategory) IsValid() bool {
	for _, vc := range VehicleCategories {
		if vc == c {
			return true
		}
	}
	return false
}

// ItpResult outcome of a periodic technical inspection
type ItpResult string

const (
	// ItpAdmis passed
	ItpAdmis ItpResult = "ADMIS"
	// ItpRespins failed
	ItpRespins ItpResult = "RESPINS"
	// ItpAdmisObs passed with observations
	ItpAdmisObs ItpResult = "ADMIS_OBS"
)

// IsValid reports whether r is a known inspection result.
func (r ItpResult) IsValid() bool {
	return r == ItpAdmis || r == ItpRespins || r == ItpAdmisObs
}

// Label returns the Romanian display label for the inspection result.
func (r ItpResult) Label() string {
	switch r {
	case ItpAdmis:
		return "Admis"
	case ItpRespins:
		return "Respins"
	case ItpAdmisObs:
		return "Admis cu observații"
	default:
		return string(r)
	}
}
