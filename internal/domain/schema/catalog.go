package schema

import (
	"strings"
)

type RecordType string

const (
	TypePassport         RecordType = "PASSPORT"
	TypeDriversLicense   RecordType = "DRIVERS_LICENSE"
	TypeNationalID       RecordType = "NATIONAL_ID"
	TypeBirthCertificate RecordType = "BIRTH_CERTIFICATE"
	TypeSocialSecurity   RecordType = "SOCIAL_SECURITY"

	TypeMedicalProfile RecordType = "MEDICAL_PROFILE"
	TypeMedications    RecordType = "MEDICATIONS"
	TypeInsurance      RecordType = "INSURANCE"

	TypeTravelID RecordType = "TRAVEL_ID"
	TypeVisa     RecordType = "VISA"

	TypePetProfile      RecordType = "PET_PROFILE"
	TypePetVaccinations RecordType = "PET_VACCINATIONS"
	TypePetMedications  RecordType = "PET_MEDICATIONS"

	TypeEmergencyContacts RecordType = "EMERGENCY_CONTACTS"
	TypeHomeInsurance     RecordType = "HOME_INSURANCE"
)

type Category string

const (
	CategoryIdentification Category = "Identification"
	CategoryMedical        Category = "Medical"
	CategoryTravel         Category = "Travel"
	CategoryPets           Category = "Pets"
	CategoryHousehold      Category = "Household"
	CategoryOther          Category = "Other"
)

type catalogEntry struct {
	label    string
	category Category
}

var catalog = map[RecordType]catalogEntry{
	TypePassport:          {"Passport", CategoryIdentification},
	TypeDriversLicense:    {"Driver's license", CategoryIdentification},
	TypeNationalID:        {"National ID card", CategoryIdentification},
	TypeBirthCertificate:  {"Birth certificate", CategoryIdentification},
	TypeSocialSecurity:    {"Social security card", CategoryIdentification},
	TypeMedicalProfile:    {"Medical profile", CategoryMedical},
	TypeMedications:       {"Medications", CategoryMedical},
	TypeInsurance:         {"Health insurance", CategoryMedical},
	TypeTravelID:          {"Trusted traveler ID", CategoryTravel},
	TypeVisa:              {"Visa", CategoryTravel},
	TypePetProfile:        {"Pet profile", CategoryPets},
	TypePetVaccinations:   {"Pet vaccinations", CategoryPets},
	TypePetMedications:    {"Pet medications", CategoryPets},
	TypeEmergencyContacts: {"Emergency contacts", CategoryHousehold},
	TypeHomeInsurance:     {"Home insurance", CategoryHousehold},
}

func (t RecordType) String() string {
	return string(t)
}

// Known reports whether t is listed in the catalog.
func (t RecordType) Known() bool {
	_, ok := catalog[t]
	return ok
}

// DisplayName returns the human label for t. Types missing from the catalog
// get one derived from the identifier: "LEGACY_NOTE" -> "Legacy note".
func (t RecordType) DisplayName() string {
	if entry, ok := catalog[t]; ok {
		return entry.label
	}
	words := strings.Fields(strings.ReplaceAll(strings.ToLower(string(t)), "_", " "))
	if len(words) == 0 {
		return "Record"
	}
	label := strings.Join(words, " ")
	return strings.ToUpper(label[:1]) + label[1:]
}

func (t RecordType) Category() Category {
	if entry, ok := catalog[t]; ok {
		return entry.category
	}
	return CategoryOther
}
