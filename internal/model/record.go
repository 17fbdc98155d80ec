package model

import "strings"

// StartupRecord is one row of the startup.az directory after cleaning.
// Records are immutable once loaded; the aggregator only ever reads them.
type StartupRecord struct {
	Title   string  `json:"title"`
	Segment Segment `json:"segment"`
	Status  Status  `json:"status"`

	SeekingInvestment bool `json:"seeking_investment"`
	// SoughtAmount is the requested investment in AZN. Only meaningful when
	// SeekingInvestment is true and the listing named a figure.
	SoughtAmount     *float64 `json:"sought_amount,omitempty"`
	TeamSize         *int     `json:"team_size,omitempty"`

	HasWebsite     bool `json:"has_website"`
	HasEmail       bool `json:"has_email"`
	HasCertificate bool `json:"has_certificate"`
}

// Segment is the business segment of a startup. The directory uses a small
// closed set; anything else is tagged Other, an absent value Unspecified.
type Segment string

const (
	SegmentAgroTech    Segment = "agrotech"
	SegmentEdTech      Segment = "edtech"
	SegmentFinTech     Segment = "fintech"
	SegmentHealthTech  Segment = "healthtech"
	SegmentECommerce   Segment = "e-commerce"
	SegmentTourism     Segment = "tourism"
	SegmentAI          Segment = "ai"
	SegmentLogistics   Segment = "logistics"
	SegmentOther       Segment = "other"
	SegmentUnspecified Segment = "unspecified"
)

// ParseSegment maps a raw segment cell to a closed variant. Unrecognized
// non-empty values become SegmentOther so no record is silently dropped.
func ParseSegment(raw string) Segment {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "":
		return SegmentUnspecified
	case "agrotech", "aqrotex", "agro":
		return SegmentAgroTech
	case "edtech", "education", "təhsil":
		return SegmentEdTech
	case "fintech", "finance":
		return SegmentFinTech
	case "healthtech", "medtech", "səhiyyə":
		return SegmentHealthTech
	case "e-commerce", "ecommerce", "e-ticarət":
		return SegmentECommerce
	case "tourism", "travel", "turizm":
		return SegmentTourism
	case "ai", "artificial intelligence", "süni intellekt":
		return SegmentAI
	case "logistics", "logistika":
		return SegmentLogistics
	default:
		return SegmentOther
	}
}

// Status is the operating status of a startup.
type Status string

const (
	StatusOperating Status = "operating"
	StatusSelling   Status = "selling"
	StatusMVP       Status = "mvp"
	StatusClosed    Status = "closed"
	StatusUnknown   Status = "unknown"
)

// ParseStatus maps a raw status cell to a closed variant. The directory is
// bilingual, so both English and Azerbaijani labels are recognized.
func ParseStatus(raw string) Status {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "operating", "active", "fəaliyyətdədir", "fəaliyyət göstərir":
		return StatusOperating
	case "selling", "for sale", "satılır":
		return StatusSelling
	case "mvp", "prototype", "prototip":
		return StatusMVP
	case "closed", "bağlanıb", "dayandırılıb":
		return StatusClosed
	default:
		return StatusUnknown
	}
}
