package types

// SiteType is the fixed listing-category enumeration for sites. The storage
// layer rejects any other value independently of higher-level validation.
type SiteType string

const (
	SiteTypeAuto SiteType = "AUTO"
	SiteTypeRent SiteType = "RENT"
	SiteTypeBuy  SiteType = "BUY"
	SiteTypeFree SiteType = "FREE"
)

// SiteTypes lists every valid site type for enumeration and error messages.
var SiteTypes = []SiteType{SiteTypeAuto, SiteTypeRent, SiteTypeBuy, SiteTypeFree}

// Valid reports whether t is one of the fixed site types.
func (t SiteType) Valid() bool {
	switch t {
	case SiteTypeAuto, SiteTypeRent, SiteTypeBuy, SiteTypeFree:
		return true
	}
	return false
}

// Site is a pollable endpoint owned by exactly one Source. The persisted
// column for the owner is named parent_id; the reference is to sources(id).
type Site struct {
	SiteID   int64    `json:"id"`
	SourceID int64    `json:"parent_id"`
	SiteURL  string   `json:"site_url"`
	SiteType SiteType `json:"site_type"`
}

// ID returns the persisted site id.
func (s *Site) ID() int64 { return s.SiteID }

// Kind returns KindSite.
func (s *Site) Kind() Kind { return KindSite }
