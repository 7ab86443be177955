package schema

func petSchemas() []Schema {
	return []Schema{
		{
			Type: TypePetProfile,
			Fields: []Field{
				text("name", "Name"),
				choice("species", "Species", "Dog", "Cat", "Bird", "Rabbit", "Other"),
				text("breed", "Breed"),
				choice("sex", "Sex", "Female", "Male"),
				date("dateOfBirth", "Date of birth"),
				toggle("isNeutered", "Spayed / neutered"),
				text("microchip.number", "Microchip number"),
				text("microchip.registry", "Microchip registry"),
				text("veterinarian.name", "Veterinarian"),
				text("veterinarian.phone", "Veterinarian phone"),
				document("photo", "Photo"),
			},
		},
		{
			Type: TypePetVaccinations,
			Fields: []Field{
				objectList("vaccinations", "Vaccinations",
					text("vaccineName", "Vaccine"),
					date("dateGiven", "Date given"),
					date("nextDueDate", "Next due"),
					text("administeredBy", "Administered by"),
					text("lotNumber", "Lot number"),
					document("certificate", "Certificate"),
				),
			},
		},
		{
			Type: TypePetMedications,
			Fields: []Field{
				objectList("medications", "Medications",
					text("medicationName", "Medication"),
					text("dosage", "Dosage"),
					timeList("times", "Times"),
					toggle("withFood", "Give with food"),
					text("notes", "Notes"),
				),
			},
		},
	}
}
