package schema

const (
	ProgramGlobalEntry = "Global Entry"
	ProgramPreCheck    = "TSA PreCheck"
	ProgramNexus       = "NEXUS"
	ProgramSentri      = "SENTRI"
	ProgramClear       = "CLEAR"
)

// travelerNumberLabel names the member number the way each program prints it
// on the card.
func travelerNumberLabel(data map[string]any) string {
	program, _ := data["programType"].(string)
	switch program {
	case ProgramGlobalEntry, ProgramNexus, ProgramSentri:
		return "PASSID"
	case ProgramPreCheck:
		return "Known Traveler Number"
	case ProgramClear:
		return "CLEAR member ID"
	}
	return ""
}

func travelSchemas() []Schema {
	return []Schema{
		{
			Type: TypeTravelID,
			Fields: []Field{
				choice("programType", "Program", ProgramGlobalEntry, ProgramPreCheck, ProgramNexus, ProgramSentri, ProgramClear),
				text("travelerNumber", "Traveler number").labelled(travelerNumberLabel),
				text("fullName", "Full name"),
				date("issueDate", "Issue date"),
				date("expirationDate", "Expiration date"),
			},
		},
		{
			Type: TypeVisa,
			Fields: []Field{
				text("country", "Country"),
				text("visaType", "Visa type"),
				text("visaNumber", "Visa number"),
				choice("entries", "Entries", "Single", "Multiple"),
				date("issueDate", "Issue date"),
				date("expirationDate", "Expiration date"),
				document("visaPage", "Visa page"),
			},
		},
	}
}
