package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaultkeeper/internal/domain/path"
)

func TestRegistry_Fields(t *testing.T) {
	reg := Default()

	fields := reg.Fields(TypePassport)
	require.NotEmpty(t, fields)
	assert.Equal(t, "firstName", fields[0].Key.String())

	// callers get a copy
	fields[0].Label = "changed"
	assert.Equal(t, "First name", reg.Fields(TypePassport)[0].Label)

	assert.Empty(t, reg.Fields("NO_SUCH_TYPE"))
}

func TestRegistry_CanonicalDefault(t *testing.T) {
	reg := Default()

	def := reg.CanonicalDefault(TypeBirthCertificate)
	assert.Equal(t, "", def["fullName"])
	assert.Equal(t, map[string]any{
		"includeParents": false,
		"parent1Name":    nil,
		"parent2Name":    nil,
	}, def["parents"])

	passport := reg.CanonicalDefault(TypePassport)
	assert.Contains(t, passport, "expirationDate")
	assert.Nil(t, passport["expirationDate"])

	license := reg.CanonicalDefault(TypeDriversLicense)
	assert.Equal(t, []any{}, license["endorsements"])
	assert.Equal(t, false, license["organDonor"])
	assert.Equal(t, map[string]any{"street": "", "city": "", "state": "", "postalCode": ""}, license["address"])

	insurance := reg.CanonicalDefault(TypeInsurance)
	assert.Contains(t, insurance, "insuranceCard")
	assert.Nil(t, insurance["insuranceCard"])

	home := reg.CanonicalDefault(TypeHomeInsurance)
	assert.Equal(t, "", home["agentName"])

	social := reg.CanonicalDefault(TypeSocialSecurity)
	assert.NotContains(t, social, "privacyNote")

	assert.Equal(t, map[string]any{}, reg.CanonicalDefault("NO_SUCH_TYPE"))
}

func TestRegistry_CanonicalDefault_IsDeepCopy(t *testing.T) {
	reg := Default()

	def := reg.CanonicalDefault(TypeDriversLicense)
	def["address"].(map[string]any)["city"] = "Oslo"
	def["endorsements"] = append(def["endorsements"].([]any), "X")

	fresh := reg.CanonicalDefault(TypeDriversLicense)
	assert.Equal(t, "", fresh["address"].(map[string]any)["city"])
	assert.Empty(t, fresh["endorsements"])
}

func TestRegistry_DefaultCoversEveryKey(t *testing.T) {
	reg := Default()
	for _, rt := range reg.Types() {
		def := reg.CanonicalDefault(rt)
		for _, f := range reg.Fields(rt) {
			if !f.HasData() {
				continue
			}
			_, ok := path.Get(def, f.Key)
			assert.True(t, ok, "%s: default misses %s", rt, f.Key)
		}
	}
}

func TestRegistry_VisibleFields(t *testing.T) {
	reg := Default()

	hidden := reg.VisibleFields(TypeBirthCertificate, map[string]any{
		"parents": map[string]any{"includeParents": false},
	})
	for _, f := range hidden {
		assert.NotEqual(t, "parents.parent1Name", f.Key.String())
	}

	shown := reg.VisibleFields(TypeBirthCertificate, map[string]any{
		"parents": map[string]any{"includeParents": true},
	})
	assert.Len(t, shown, len(hidden)+2)
}

func TestField_LabelFor(t *testing.T) {
	var number Field
	for _, f := range Default().Fields(TypeTravelID) {
		if f.Key.String() == "travelerNumber" {
			number = f
		}
	}

	tests := []struct {
		program string
		want    string
	}{
		{ProgramGlobalEntry, "PASSID"},
		{ProgramPreCheck, "Known Traveler Number"},
		{ProgramClear, "CLEAR member ID"},
		{"", "Traveler number"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, number.LabelFor(map[string]any{"programType": tt.program}))
		})
	}
}

func TestNewRegistry_RejectsInvalidSchemas(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
	}{
		{
			name:   "duplicate key",
			schema: Schema{Type: "X", Fields: []Field{text("a", "A"), text("a", "A again")}},
		},
		{
			name:   "unknown type",
			schema: Schema{Type: "X", Fields: []Field{field("color", "a", "A")}},
		},
		{
			name:   "objectList without items",
			schema: Schema{Type: "X", Fields: []Field{field(FieldObjectList, "items", "Items")}},
		},
		{
			name: "nested objectList",
			schema: Schema{Type: "X", Fields: []Field{
				objectList("outer", "Outer", objectList("inner", "Inner", text("a", "A"))),
			}},
		},
		{
			name:   "key nested under another key",
			schema: Schema{Type: "X", Fields: []Field{text("address", "Address"), text("address.city", "City")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { NewRegistry([]Schema{tt.schema}) })
		})
	}
}

func TestRecordType_Catalog(t *testing.T) {
	assert.Equal(t, "Passport", TypePassport.DisplayName())
	assert.Equal(t, CategoryPets, TypePetVaccinations.Category())
	assert.True(t, TypeVisa.Known())

	legacy := RecordType("LEGACY_NOTE")
	assert.False(t, legacy.Known())
	assert.Equal(t, "Legacy note", legacy.DisplayName())
	assert.Equal(t, CategoryOther, legacy.Category())
	assert.Equal(t, "Record", RecordType("").DisplayName())
}
