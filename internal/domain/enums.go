package domain

// Category represents a product category
type Category string

const (
	CategoryOberteile   Category = "oberteile"
	CategoryKleider     Category = "kleider"
	CategoryHandtaschen Category = "handtaschen"
	CategorySchmuck     Category = "schmuck"
	CategoryAccessoires Category = "accessoires"

	// CategoryAll is the filter sentinel matching every product.
	CategoryAll Category = "all"
)

// IsValid checks if the category is valid
func (c Category) IsValid() bool {
	switch c {
	case CategoryOberteile,
		CategoryKleider,
		CategoryHandtaschen,
		CategorySchmuck,
		CategoryAccessoires:
		return true
	default:
		return false
	}
}

// DisplayName returns the customer-facing category label
func (c Category) DisplayName() string {
	switch c {
	case CategoryOberteile:
		return "Oberteile"
	case CategoryKleider:
		return "Kleider"
	case CategoryHandtaschen:
		return "Handtaschen"
	case CategorySchmuck:
		return "Schmuck"
	case CategoryAccessoires:
		return "Accessoires"
	default:
		return string(c)
	}
}

// ContactSubject represents the topic of a contact submission
type ContactSubject string

const (
	SubjectStyling ContactSubject = "styling"
	SubjectOrder   ContactSubject = "order"
	SubjectReturn  ContactSubject = "return"
	SubjectVIP     ContactSubject = "vip"
	SubjectOther   ContactSubject = "other"
)

// IsValid checks if the contact subject is valid
func (s ContactSubject) IsValid() bool {
	switch s {
	case SubjectStyling, SubjectOrder, SubjectReturn, SubjectVIP, SubjectOther:
		return true
	default:
		return false
	}
}

// DisplayName returns the readable subject label used in downstream workflows
func (s ContactSubject) DisplayName() string {
	switch s {
	case SubjectStyling:
		return "Styling-Beratung"
	case SubjectOrder:
		return "Bestellanfrage"
	case SubjectReturn:
		return "Rückgabe/Umtausch"
	case SubjectVIP:
		return "VIP-Programm"
	case SubjectOther:
		return "Sonstiges"
	default:
		return string(s)
	}
}

// CustomerTier classifies a customer in the external customer store
type CustomerTier string

const (
	TierNeu  CustomerTier = "Neu"
	TierGold CustomerTier = "Gold"
	TierVIP  CustomerTier = "VIP"
)
