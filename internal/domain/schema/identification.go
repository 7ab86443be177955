package schema

func identificationSchemas() []Schema {
	return []Schema{
		{
			Type: TypePassport,
			Fields: []Field{
				text("firstName", "First name"),
				text("middleName", "Middle name"),
				text("lastName", "Last name"),
				text("passportNumber", "Passport number"),
				text("nationality", "Nationality"),
				date("dateOfBirth", "Date of birth"),
				text("placeOfBirth", "Place of birth"),
				choice("sex", "Sex", "F", "M", "X"),
				date("issueDate", "Issue date"),
				date("expirationDate", "Expiration date"),
				text("issuingAuthority", "Issuing authority"),
				multiline("notes", "Notes"),
			},
		},
		{
			Type: TypeDriversLicense,
			Fields: []Field{
				text("firstName", "First name"),
				text("lastName", "Last name"),
				text("licenseNumber", "License number"),
				text("issuingState", "Issuing state"),
				choice("licenseClass", "Class", "A", "B", "C", "D", "M"),
				list("endorsements", "Endorsements"),
				list("restrictions", "Restrictions"),
				date("issueDate", "Issue date"),
				date("expirationDate", "Expiration date"),
				text("address.street", "Street"),
				text("address.city", "City"),
				text("address.state", "State"),
				text("address.postalCode", "Postal code"),
				toggle("organDonor", "Organ donor"),
			},
		},
		{
			Type: TypeNationalID,
			Fields: []Field{
				text("firstName", "First name"),
				text("lastName", "Last name"),
				text("idNumber", "ID number"),
				text("country", "Country"),
				date("dateOfBirth", "Date of birth"),
				date("issueDate", "Issue date"),
				date("expirationDate", "Expiration date"),
			},
		},
		{
			Type: TypeBirthCertificate,
			Fields: []Field{
				text("fullName", "Full name"),
				date("dateOfBirth", "Date of birth"),
				text("placeOfBirth", "Place of birth"),
				text("certificateNumber", "Certificate number"),
				date("registrationDate", "Registration date"),
				toggle("parents.includeParents", "Include parents"),
				text("parents.parent1Name", "Parent 1").when("parents.includeParents", true),
				text("parents.parent2Name", "Parent 2").when("parents.includeParents", true),
			},
		},
		{
			Type: TypeSocialSecurity,
			Fields: []Field{
				description("privacyNote", "Store the number only; never attach the physical card photo to shared records."),
				text("fullName", "Full name"),
				text("ssn", "Social security number"),
			},
		},
	}
}
