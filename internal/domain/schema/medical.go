package schema

func medicalSchemas() []Schema {
	return []Schema{
		{
			Type: TypeMedicalProfile,
			Fields: []Field{
				choice("bloodType", "Blood type", "A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"),
				list("allergies", "Allergies"),
				list("conditions", "Conditions"),
				text("primaryPhysician.name", "Primary physician"),
				text("primaryPhysician.phone", "Physician phone"),
				toggle("organDonor", "Organ donor"),
				multiline("notes", "Notes"),
				objectList("providers", "Providers",
					text("providerName", "Provider"),
					text("specialty", "Specialty"),
					text("phone", "Phone"),
					toggle("isPrimary", "Primary"),
				),
			},
		},
		{
			Type: TypeMedications,
			Fields: []Field{
				objectList("medications", "Medications",
					text("medicationName", "Medication"),
					text("dosage", "Dosage"),
					choice("frequency", "Frequency", "Daily", "Twice daily", "Weekly", "As needed"),
					timeList("times", "Times"),
					text("prescribedBy", "Prescribed by"),
					date("startDate", "Start date"),
					toggle("active", "Active"),
				),
			},
		},
		{
			Type: TypeInsurance,
			Fields: []Field{
				text("provider", "Provider"),
				choice("planType", "Plan type", "HMO", "PPO", "EPO", "POS", "Other"),
				text("policyNumber", "Policy number"),
				text("groupNumber", "Group number"),
				text("memberId", "Member ID"),
				date("effectiveDate", "Effective date"),
				date("expirationDate", "Expiration date"),
				document("insuranceCard", "Insurance card"),
			},
		},
	}
}
