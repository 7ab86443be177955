package schema

func householdSchemas() []Schema {
	return []Schema{
		{
			Type: TypeEmergencyContacts,
			Fields: []Field{
				objectList("contacts", "Contacts",
					text("name", "Name"),
					text("relationship", "Relationship"),
					text("phone", "Phone"),
					text("email", "Email"),
					toggle("isPrimary", "Primary contact"),
					text("otherRelationship", "Describe relationship").when("relationship", "Other"),
				),
			},
		},
		{
			Type: TypeHomeInsurance,
			Fields: []Field{
				text("provider", "Provider"),
				text("policyNumber", "Policy number"),
				text("property.street", "Street"),
				text("property.city", "City"),
				text("property.postalCode", "Postal code"),
				text("coverageAmount", "Coverage amount"),
				text("deductible", "Deductible"),
				date("expirationDate", "Expiration date"),
				document("policyDocument", "Policy document"),
			},
			// Agent details moved to the contacts record; old payloads still carry them.
			Legacy: map[string]any{
				"agentName":  "",
				"agentPhone": "",
			},
		},
	}
}
